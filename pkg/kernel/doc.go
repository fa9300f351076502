// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package kernel provides the pure numeric functions behind the dispatcher
// and the raw host exports.
//
// Every function is total over its declared domain, has no side effects and
// returns the same output for the same input. Nothing here logs, reads a
// clock, or allocates beyond the stack.
//
// # Domains
//
//   - Add: any int32 pair, wraps on overflow
//   - Factorial: n in [0, MaxFactorialInput]; larger n wraps modulo 2^64
//   - IsPrime: any uint64
//   - Fibonacci: n in [0, MaxFibonacciInput] at the handler layer; the
//     kernel itself is exact up to n = 93
//   - HashBytes / HashString: any byte sequence (djb2, seed 5381, x33)
//
// Callers that expose these to untrusted input are expected to enforce the
// caps before calling; see pkg/router.
package kernel
