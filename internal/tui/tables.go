package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/zxconsole/zxconsole/internal/breakpoint"
	"github.com/zxconsole/zxconsole/internal/format"
	"github.com/zxconsole/zxconsole/internal/model"
	"github.com/zxconsole/zxconsole/internal/ui/shared/table"
)

// targetRow/threadRow/jobRow wrap the id alongside the model entity: the
// table component's Render callback receives `row any` and performs its own
// type assertion, so each listing needs a concrete row type to assert back
// to (table.ColumnConfig's doc comment).
type targetRow struct {
	id int
	t  *model.Target
}
type threadRow struct {
	id int
	th *model.Thread
}
type jobRow struct {
	id int
	j  *model.JobContext
}

func (m *Model) tableConfig(t tab) table.TableConfig {
	switch t {
	case tabProcesses:
		return table.TableConfig{
			ShowHeader: true, ShowBorder: false, EmptyMessage: "No processes",
			Columns: []table.ColumnConfig{
				{Key: "id", Header: "#", Width: 4, Render: func(row any, _ string, w int, _ bool) string {
					return fmt.Sprintf("%-*d", w, row.(targetRow).id)
				}},
				{Key: "line", Header: "Process", MinWidth: 10, Render: func(row any, _ string, w int, _ bool) string {
					r := row.(targetRow)
					return format.TargetLine(m.renderer, r.id, r.t)
				}},
			},
		}
	case tabThreads:
		return table.TableConfig{
			ShowHeader: true, ShowBorder: false, EmptyMessage: "No threads",
			Columns: []table.ColumnConfig{
				{Key: "id", Header: "#", Width: 4, Render: func(row any, _ string, w int, _ bool) string {
					return fmt.Sprintf("%-*d", w, row.(threadRow).id)
				}},
				{Key: "line", Header: "Thread", MinWidth: 10, Render: func(row any, _ string, w int, _ bool) string {
					r := row.(threadRow)
					return format.ThreadLine(m.renderer, r.id, r.th)
				}},
			},
		}
	case tabBreakpoints:
		return table.TableConfig{
			ShowHeader: true, ShowBorder: false, EmptyMessage: "No breakpoints",
			Columns: []table.ColumnConfig{
				{Key: "line", Header: "Breakpoint", MinWidth: 10, Render: func(row any, _ string, w int, _ bool) string {
					return format.BreakpointLine(m.renderer, row.(*breakpoint.Breakpoint))
				}},
			},
		}
	case tabFilters:
		return table.TableConfig{
			ShowHeader: true, ShowBorder: false, EmptyMessage: "No filters",
			Columns: []table.ColumnConfig{
				{Key: "line", Header: "Filter", MinWidth: 10, Render: func(row any, _ string, w int, _ bool) string {
					return format.FilterLine(m.renderer, row.(*breakpoint.Filter))
				}},
			},
		}
	case tabJobs:
		return table.TableConfig{
			ShowHeader: true, ShowBorder: false, EmptyMessage: "No jobs",
			Columns: []table.ColumnConfig{
				{Key: "id", Header: "#", Width: 4, Align: lipgloss.Left, Render: func(row any, _ string, w int, _ bool) string {
					return fmt.Sprintf("%-*d", w, row.(jobRow).id)
				}},
				{Key: "name", Header: "Job", MinWidth: 10, Render: func(row any, _ string, w int, _ bool) string {
					r := row.(jobRow)
					return fmt.Sprintf("%s %s", r.j.State(), r.j.Name())
				}},
			},
		}
	}
	return table.TableConfig{}
}

// refreshTables re-reads ConsoleContext's id registries and rebuilds each
// table's row set (spec's process/thread/breakpoint/filter/job listings,
// §4.6 "list Noun"). It does not change which row is selected.
func (m *Model) refreshTables() {
	targetIDs := m.ctx.TargetIDs()
	targetRows := make([]any, 0, len(targetIDs))
	for _, id := range targetIDs {
		t, ok := m.ctx.TargetByID(id)
		if ok {
			targetRows = append(targetRows, targetRow{id: id, t: t})
		}
	}
	m.tables[tabProcesses] = m.tables[tabProcesses].SetRows(targetRows)

	var threadRows []any
	for _, id := range targetIDs {
		t, ok := m.ctx.TargetByID(id)
		if !ok {
			continue
		}
		for _, tid := range m.ctx.ThreadIDs(t) {
			th, ok := m.ctx.ThreadByID(t, tid)
			if ok {
				threadRows = append(threadRows, threadRow{id: tid, th: th})
			}
		}
	}
	m.tables[tabThreads] = m.tables[tabThreads].SetRows(threadRows)

	bps := m.ctx.Engine().Breakpoints()
	bpRows := make([]any, 0, len(bps))
	for _, b := range bps {
		bpRows = append(bpRows, b)
	}
	m.tables[tabBreakpoints] = m.tables[tabBreakpoints].SetRows(bpRows)

	filters := m.ctx.Engine().Filters()
	filterRows := make([]any, 0, len(filters))
	for _, f := range filters {
		filterRows = append(filterRows, f)
	}
	m.tables[tabFilters] = m.tables[tabFilters].SetRows(filterRows)

	jobIDs := m.ctx.JobIDs()
	jobRows := make([]any, 0, len(jobIDs))
	for _, id := range jobIDs {
		j, ok := m.ctx.JobByID(id)
		if ok {
			jobRows = append(jobRows, jobRow{id: id, j: j})
		}
	}
	m.tables[tabJobs] = m.tables[tabJobs].SetRows(jobRows)
}
