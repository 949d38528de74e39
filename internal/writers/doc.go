// Package writers turns built graphs into serialized output.
//
// Design:
//   • Renderers own all presentation knowledge (text, chrysalis, DOT, JSONL).
//   • Graphs stay domain-only; the pipeline stays orchestration-only.
//   • A single writer goroutine owns the output stream, so rendered blocks
//     from concurrent workers never interleave.
//   • JSONL goes through pkg/api (v1) for a stable wire format.
package writers
