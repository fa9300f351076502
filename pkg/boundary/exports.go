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

package boundary

import "github.com/NVIDIA/wasm-numerics/pkg/kernel"

// Add is the add(i32, i32) -> i32 export.
func Add(a, b int32) int32 {
	return kernel.Add(a, b)
}

// Factorial is the factorial(u32) -> u64 export. Inputs above
// kernel.MaxFactorialInput wrap modulo 2^64.
func Factorial(n uint32) uint64 {
	return kernel.Factorial(n)
}

// IsPrime is the is_prime(u32) -> i32 export: 1 when n is prime, else 0.
func IsPrime(n uint32) int32 {
	if kernel.IsPrime(n) {
		return 1
	}
	return 0
}

// Fibonacci is the fibonacci(u32) -> u64 export.
func Fibonacci(n uint32) uint64 {
	return kernel.Fibonacci(n)
}

// HashBytes is the hash_bytes(*u8, usize) -> u32 export.
func HashBytes(buf []byte) uint32 {
	return kernel.HashBytes(buf)
}
