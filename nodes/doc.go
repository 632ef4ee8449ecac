// Package nodes is the illustrative inventory of built-in DSP nodes:
// oscillators, a mixer, an FIR filter, a sampler, delay write/read, and a
// generic apply-op. Each node implements legato.Node and is exercised by
// the core's ordering, resource-access, and block-rate contracts.
package nodes
