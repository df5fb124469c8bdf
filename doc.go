// Package maxlen implements length-bounded views and buffers over slices
// and UTF-8 text.
//
// A bounded container guarantees that its logical length never exceeds a
// declared maximum. The bound is fixed at construction and every
// construction path either validates it or requires the caller to attest
// it. Once a value exists, no operation it exposes can grow it past the
// bound: the mutating surface is restricted to operations that shrink or
// rearrange content (truncate, remove, retain, split, dedup, and so on).
// Callers that need growth operate on the native value and re-validate.
//
// # Views and buffers
//
// Four types form two borrowed/owned pairs:
//   - [BSlice] is a read/write view of a native slice; [BVec] is its
//     owned counterpart holding a growable backing array.
//   - [BStr] is a view of a native string; [BString] is its owned
//     counterpart backed by a mutable byte buffer.
//
// A view borrows from its source and copies nothing. A buffer owns its
// storage; Borrow yields a view over it and Materialize clones a view
// into a fresh buffer.
//
// # Measured length
//
// For element containers the logical length is the element count. For
// text it is computed by a pluggable [Encoding] strategy, so a bound can
// apply to the serialized size of a string rather than its in-memory
// byte count. Three encodings are provided: [UTF8] (native byte length),
// [CESU8], and [ModifiedCESU8].
//
// # Checked and unchecked construction
//
// Checked constructors ([Slice], [Vec], [Str], [OwnString]) compute the
// logical length and return [LengthExceeded] when it is over the bound.
// Unchecked constructors skip the check; they exist for callers that
// have already established the bound holds, such as data just read from
// a framing layer that enforces the limit itself (see the frame
// subpackage). Calling one with an over-long value breaks the container
// invariant and the behavior of everything downstream is undefined.
//
// Bounds can be raised for free with Widen, which never fails for a
// larger bound, or changed arbitrarily with Rebound, which re-validates
// at runtime. The cmd/boundgen tool moves literal validation to build
// time: it rejects declarations that exceed their bound and emits
// unchecked constructions once the check has been discharged.
package maxlen
