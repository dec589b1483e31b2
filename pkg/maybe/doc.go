// Package maybe defines Maybe[T], a value that either holds a T, holds an
// Error, or holds nothing, together with the operations that compose such
// values without panics or nil checks escaping into the caller.
//
// Highlights:
// - From/Nothing/Fail/FromError/FromResult: construct a Maybe
// - Then: bind; panics in callbacks become Error states
// - Where/Do: filter and side effects on the value
// - WhenError/WhenNothing/WhenNothingFail: recovery
// - LogErrors: hand failures to a logging callback
// - Eval/If/Holds/FailWhen: conditional and guarded construction
// - Value/MustValue/ValueOrDefault/Err: leave the monad
//
// Cross-type helpers live in package solo, sequence adapters in package seq.
package maybe
