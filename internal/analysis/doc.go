// Package analysis turns unstructured vision-annotation responses into
// structured product mentions.
//
// Two input forms are supported: raw text following the MAIN:/SECONDARY:
// sectioning convention, parsed by an explicit three-state machine, and
// already-structured webhook records carrying a principal product plus a
// product list. Both produce the same Result shape. Parsing is best-effort
// and total: unusable lines are dropped, never raised, and a Result with
// zero mentions is a legitimate outcome meaning nothing usable was
// extracted.
package analysis
