// Package estimate is the GPU memory estimation engine: size-label parsing,
// precision resolution from model configuration, the memory/parameter-count
// conversions, and report rendering. Everything here is pure; registry I/O
// stays behind the registry.Client interface injected into the Facade.
package estimate
