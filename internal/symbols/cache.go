package symbols

import (
	"context"
	"fmt"
	"time"

	"github.com/zxconsole/zxconsole/internal/cachemanager"
)

const (
	cacheExpiration     = 30 * time.Second
	cacheCleanupInterval = 2 * time.Minute
)

// CachedService wraps a Service with a short-TTL read-through cache keyed by
// (module, pc), avoiding redundant SymbolService round-trips during rapid
// stepping (spec §4.4/§4.5 call InlineChainAt and LineRange on every stop).
// Only DescribeFunction, InlineChainAt and LineRange are cached;
// ResolveLocation, EvaluateExpression and CallInstructionsOnLine pass
// straight through to the wrapped Service.
type CachedService struct {
	inner      Service
	inlineChain cachemanager.CacheManager[string, []InlineFrame]
	lineRange   cachemanager.CacheManager[string, [2]uint64]
	describe    cachemanager.CacheManager[string, describeEntry]
}

type describeEntry struct {
	Info FunctionInfo
	Ok   bool
}

// NewCachedService wraps inner with per-query in-memory caches.
func NewCachedService(inner Service) *CachedService {
	return &CachedService{
		inner:       inner,
		inlineChain: cachemanager.NewInMemoryCacheManager[string, []InlineFrame]("symbols.inline_chain", cacheExpiration, cacheCleanupInterval),
		lineRange:   cachemanager.NewInMemoryCacheManager[string, [2]uint64]("symbols.line_range", cacheExpiration, cacheCleanupInterval),
		describe:    cachemanager.NewInMemoryCacheManager[string, describeEntry]("symbols.describe_function", cacheExpiration, cacheCleanupInterval),
	}
}

func pcKey(module string, pc uint64) string {
	return fmt.Sprintf("%s:%#x", module, pc)
}

func (c *CachedService) ResolveLocation(ctx context.Context, module string, loc InputLocation) ([]ResolvedLocation, error) {
	return c.inner.ResolveLocation(ctx, module, loc)
}

func (c *CachedService) DescribeFunction(ctx context.Context, module string, pc uint64) (FunctionInfo, bool, error) {
	key := pcKey(module, pc)
	if v, found := c.describe.Get(ctx, key); found {
		return v.Info, v.Ok, nil
	}
	info, ok, err := c.inner.DescribeFunction(ctx, module, pc)
	if err != nil {
		return info, ok, err
	}
	c.describe.Set(ctx, key, describeEntry{Info: info, Ok: ok}, cacheExpiration)
	return info, ok, nil
}

func (c *CachedService) InlineChainAt(ctx context.Context, module string, pc uint64) ([]InlineFrame, error) {
	key := pcKey(module, pc)
	if v, found := c.inlineChain.Get(ctx, key); found {
		return v, nil
	}
	chain, err := c.inner.InlineChainAt(ctx, module, pc)
	if err != nil {
		return nil, err
	}
	c.inlineChain.Set(ctx, key, chain, cacheExpiration)
	return chain, nil
}

func (c *CachedService) EvaluateExpression(ctx context.Context, module string, pc uint64, expr string) (string, error) {
	return c.inner.EvaluateExpression(ctx, module, pc, expr)
}

func (c *CachedService) CallInstructionsOnLine(ctx context.Context, module string, pc uint64) ([]CallInstruction, error) {
	return c.inner.CallInstructionsOnLine(ctx, module, pc)
}

func (c *CachedService) LineRange(ctx context.Context, module string, pc uint64) (uint64, uint64, error) {
	key := pcKey(module, pc)
	if v, found := c.lineRange.Get(ctx, key); found {
		return v[0], v[1], nil
	}
	begin, end, err := c.inner.LineRange(ctx, module, pc)
	if err != nil {
		return 0, 0, err
	}
	c.lineRange.Set(ctx, key, [2]uint64{begin, end}, cacheExpiration)
	return begin, end, nil
}

var _ Service = (*CachedService)(nil)
