package format_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zxconsole/zxconsole/internal/format"
)

func TestPlainRendererRoundTripsText(t *testing.T) {
	line := format.Line{format.Heading("Process "), format.EntityID("1"), format.Heading(" stopped")}
	require.Equal(t, "Process 1 stopped", format.PlainRenderer{}.RenderLine(line))
}

func TestBufferPlainText(t *testing.T) {
	buf := format.Buffer{
		format.Line{format.Plain("frame 0")},
		format.Line{format.Plain("frame 1")},
	}
	require.Equal(t, "frame 0\nframe 1", buf.PlainText())
}

func TestLipglossRendererAppliesColor(t *testing.T) {
	out := format.LipglossRenderer{}.RenderSpan(format.Span{Kind: format.SpanSeverityFatal, Text: "panic"})
	require.Contains(t, out, "panic")
}

func TestConsoleFormatterStopHeader(t *testing.T) {
	f := format.NewConsoleFormatter(format.PlainRenderer{})
	got := f.StopHeader(1, 2, "breakpoint 3")
	require.Equal(t, "Process 1 Thread 2 stopped: breakpoint 3", got)
}
