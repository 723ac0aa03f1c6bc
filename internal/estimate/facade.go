package estimate

import (
	"context"
	"regexp"
	"strconv"

	"vramfit/internal/registry"
	"vramfit/pkg/types"
)

// Inputs handled without the registry: a bare integer parameter count or a
// compact size label.
var (
	bareCountRe = regexp.MustCompile(`^\d+$`)
	labelRe     = regexp.MustCompile(`^\d+(?:\.\d+)?[MBTmbt]$`)
)

// Facade answers the two estimation queries, pulling file sizes and
// configuration from the injected registry client when needed.
type Facade struct {
	reg registry.Client
}

// New builds a Facade around the given registry client.
func New(reg registry.Client) *Facade { return &Facade{reg: reg} }

// Estimate routes a raw textual input: a bare numeral or size label is an
// explicit parameter count, anything else is a registry model identifier.
// Auto precision is meaningless without a configuration to inspect, so
// explicit-count queries coerce it to all.
func (f *Facade) Estimate(ctx context.Context, input string, sel types.Selector) (types.Report, error) {
	if bareCountRe.MatchString(input) || labelRe.MatchString(input) {
		if sel.Kind == types.SelectAuto {
			sel = types.Selector{Kind: types.SelectAll}
		}
		return f.FromParams(input, sel)
	}
	return f.FromRegistry(ctx, input, sel)
}

// FromParams answers the explicit-count query. The input is either a bare
// integer or a size label.
func (f *Facade) FromParams(input string, sel types.Selector) (types.Report, error) {
	var params int64
	if bareCountRe.MatchString(input) {
		n, err := strconv.ParseInt(input, 10, 64)
		if err != nil {
			return types.Report{}, ErrInvalidFormat(input)
		}
		params = n
	} else {
		n, err := ParseSizeLabel(input)
		if err != nil {
			return types.Report{}, err
		}
		params = n
	}
	if sel.Kind == types.SelectExplicit {
		return singleReport("parameters: "+FormatSizeLabel(params), params, sel.Bits), nil
	}
	return allReport("", params), nil
}

// FromRegistry answers the registry-model query. Auto resolves a concrete
// precision from the model configuration before anything else, so it never
// reaches the all branch. The all branch derives one representative
// parameter count at the 32-bit baseline and fans out from there.
func (f *Facade) FromRegistry(ctx context.Context, model string, sel types.Selector) (types.Report, error) {
	size, err := f.reg.FileSizeBytes(ctx, model)
	if err != nil {
		return types.Report{}, err
	}
	if sel.Kind == types.SelectAuto {
		cfg, err := f.reg.Config(ctx, model)
		if err != nil {
			return types.Report{}, err
		}
		sel = types.Selector{Kind: types.SelectExplicit, Bits: ResolvePrecision(cfg)}
	}
	if sel.Kind == types.SelectAll {
		params := ParamsFromFileSize(size, types.Bits32)
		return allReport(model, params), nil
	}
	params := ParamsFromFileSize(size, sel.Bits)
	return singleReport(model, params, sel.Bits), nil
}

func singleReport(subject string, params int64, p types.Precision) types.Report {
	bytes := MemoryBytes(params, p)
	est := types.PrecisionEstimate{Bits: int(p), Bytes: bytes, Human: HumanizeBytes(bytes)}
	return types.Report{
		Subject:    subject,
		Parameters: params,
		Label:      FormatSizeLabel(params),
		Estimates:  []types.PrecisionEstimate{est},
		Text:       RenderSingle(subject, p, bytes),
	}
}

func allReport(subject string, params int64) types.Report {
	ests := make([]types.PrecisionEstimate, 0, len(types.Precisions))
	for _, p := range types.Precisions {
		bytes := MemoryBytes(params, p)
		ests = append(ests, types.PrecisionEstimate{Bits: int(p), Bytes: bytes, Human: HumanizeBytes(bytes)})
	}
	rep := types.Report{
		Subject:    subject,
		Parameters: params,
		Label:      FormatSizeLabel(params),
		Estimates:  ests,
		Text:       RenderAll(subject, params, ests),
	}
	if subject == "" {
		rep.Subject = "parameters: " + rep.Label
	}
	return rep
}
