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

// Package boundary adapts the dispatcher and kernels to a foreign host.
//
// A host hands in three possibly-null text values (method, URL, query) and
// receives one encoded response. Null inputs produce a 500
// {"error":"Null pointer received"} response instead of a failure, and
// inbound bytes are decoded as UTF-8 with invalid sequences replaced by
// U+FFFD, so every call yields a well-formed triple.
//
// The kernel exports use the fixed-width types of the C ABI:
//
//	add(i32, i32) -> i32
//	factorial(u32) -> u64
//	is_prime(u32) -> i32          1 = prime, 0 = not prime
//	fibonacci(u32) -> u64
//	hash_bytes(*u8, usize) -> u32
//
// Memory ownership of the outbound text is a host concern handled by the
// binary that links this package; see cmd/libnumerics for the C build, where
// handle allocates with malloc and release frees with free.
package boundary
