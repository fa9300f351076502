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

package kernel

const (
	// MaxFactorialInput is the largest n whose factorial fits in a uint64.
	MaxFactorialInput = 20

	// MaxFibonacciInput bounds Fibonacci requests to keep response time flat.
	MaxFibonacciInput = 40

	// HashSeed is the djb2 initial value.
	HashSeed uint32 = 5381

	// HashMultiplier is the djb2 per-byte multiplier.
	HashMultiplier uint32 = 33
)

// Add returns a + b with two's-complement wrapping.
func Add(a, b int32) int32 {
	return a + b
}

// Factorial returns n! for n <= MaxFactorialInput. Factorial(0) is 1.
func Factorial(n uint32) uint64 {
	result := uint64(1)
	for k := uint64(2); k <= uint64(n); k++ {
		result *= k
	}
	return result
}

// IsPrime reports whether n is prime using odd trial division up to the
// integer square root of n. The domain is uint32, which keeps the worst case
// near 33 000 divisions.
func IsPrime(n uint32) bool {
	switch {
	case n < 2:
		return false
	case n == 2:
		return true
	case n%2 == 0:
		return false
	}

	// i <= n/i avoids overflowing i*i near the top of the range
	for i := uint32(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Fibonacci returns F(n) with F(0) = 0 and F(1) = 1.
func Fibonacci(n uint32) uint64 {
	if n < 2 {
		return uint64(n)
	}

	var a, b uint64 = 0, 1
	for i := uint32(2); i <= n; i++ {
		a, b = b, a+b
	}
	return b
}

// HashBytes returns the djb2 hash of buf.
func HashBytes(buf []byte) uint32 {
	h := HashSeed
	for _, c := range buf {
		h = h*HashMultiplier + uint32(c)
	}
	return h
}

// HashString hashes the UTF-8 bytes of s.
func HashString(s string) uint32 {
	h := HashSeed
	for i := 0; i < len(s); i++ {
		h = h*HashMultiplier + uint32(s[i])
	}
	return h
}
