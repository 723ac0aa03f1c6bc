package estimate

import "vramfit/pkg/types"

// dtypeBits maps declared torch_dtype strings to bit-widths.
var dtypeBits = map[string]types.Precision{
	"float32":  types.Bits32,
	"float16":  types.Bits16,
	"bfloat16": types.Bits16,
	"int8":     types.Bits8,
	"int4":     types.Bits4,
}

// ResolvePrecision determines the effective bit-width of a model from its
// configuration document. Priority: an explicit "quantization" block with a
// bits field, then bitsandbytes-style "quantization_config" load flags, then
// the declared torch_dtype. Unknown or malformed fields never fail; they fall
// through to the 32-bit default.
func ResolvePrecision(cfg types.ModelConfig) types.Precision {
	if q, ok := asMap(cfg["quantization"]); ok {
		if bits, ok := asBits(q["bits"]); ok {
			return bits
		}
		// A quantization block without usable bits falls back to the
		// declared dtype, normalized to a concrete bit-width.
		return dtypeOrDefault(cfg)
	}
	if qc, ok := asMap(cfg["quantization_config"]); ok {
		if truthy(qc["load_in_4bit"]) {
			return types.Bits4
		}
		if truthy(qc["load_in_8bit"]) {
			return types.Bits8
		}
	}
	return dtypeOrDefault(cfg)
}

func dtypeOrDefault(cfg types.ModelConfig) types.Precision {
	if s, ok := cfg["torch_dtype"].(string); ok {
		if p, ok := dtypeBits[s]; ok {
			return p
		}
	}
	return types.Bits32
}

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// asBits accepts the numeric encodings a decoded config.json can carry.
func asBits(v any) (types.Precision, bool) {
	var n int
	switch x := v.(type) {
	case float64:
		n = int(x)
	case int:
		n = x
	case int64:
		n = int(x)
	default:
		return 0, false
	}
	p := types.Precision(n)
	return p, p.Valid()
}

func truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case float64:
		return x != 0
	case int:
		return x != 0
	}
	return false
}
