// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fnutil provides optional and exception-carrying containers,
// sequence combinators and lazy sequence generators in Go.
//
// All operations are pure, synchronous transformations over in-memory values
// and iter.Seq sequences. Containers are immutable values once constructed.
//
// # Containers
//
// Four encodings of "a value, or not":
//
//   - [Option]: presence flag plus payload. [ToOption] treats nil references
//     and the empty string as absent. [Option.Some] reports [ErrOptionValueAccess].
//   - [OptionType]: same presence rule, but access reports [ErrEmptyOption],
//     so call sites can tell the two apart.
//   - [Maybe]: tagged variants [Something] and [Nothing].
//   - [MException]: a success value or a captured error.
//     [MException.Value] reports an [AccessError] whose cause is the
//     captured error.
//
// # Monadic Chaining
//
// Go methods cannot introduce type parameters, so binds are functions:
//
//   - [BindOption], [SelectManyOption], [MapOption]
//   - [BindMaybe], [SelectManyMaybe]
//   - [BindM], [BindWithProtect], [SelectManyM]
//
// Bind short-circuits on None, Nothing or a carried error without calling
// the continuation. Otherwise the continuation's result is returned as is.
//
// # Protect
//
// Plain [BindM] never recovers: a panic raised by the continuation reaches
// the caller. [Protect] is the only place a panic becomes data. It wraps a
// continuation so that a panic is captured into an MException in error state.
// [BindWithProtect] and [SelectManyM] use it; [Try], [Catch] and [Finally]
// build try/catch/finally chains on top of it.
//
//	r := fnutil.BindWithProtect(fnutil.ToMException(0), func(d int) fnutil.MException[int] {
//		return fnutil.ToMException(10 / d) // integer divide by zero panics
//	})
//	_, err := r.Value() // errors.Is(err, fnutil.ErrMExceptionAccess)
//
// # Sequence Combinators
//
//   - [Choose], [ChooseMaybe]: lazy filter-map over optional results
//   - [Partition], [GroupBy], [Unzip], [FoldAndChoose]: materialising splits and folds
//   - [ForAll2], [Zip3]: lockstep walks, reporting [ErrLengthMismatch]
//   - [Pick], [PickOption]: first chosen value, or [ErrEmptySequence]
//   - [In], [Then], [Filter], [Map], [ChooseFn]: pipelining and currying
//
// # Lazy Generators
//
//   - [CircularEnum]: repeats its source forever as an [Infinite] sequence
//   - [SteppedEnum]: first element, then every step-th
//   - [ConstrainedEnum], [ConstrainedEnumN]: skip, then take
//   - [ReverseEnum], [IgnoreLast], [IgnoreLastN], [IgnoreFirstAndLast], [Concat]
//
// [Infinite] marks sequences that never complete; consumers bound them with
// [Infinite.Take] or by breaking out of the range loop. [Enumerator] gives
// explicit MoveNext/Current iteration, and [OneShot] guards sequences that
// continue an earlier pull and therefore cannot be restarted.
//
// # Field Verification
//
// [PartitionWithVerify] sorts input fields into mandatory-present,
// optional-present, missing (AWOL) and unexpected sets.
package fnutil
