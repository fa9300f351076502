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

import "testing"

func BenchmarkFactorial(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Factorial(MaxFactorialInput)
	}
}

func BenchmarkIsPrime(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = IsPrime(4294967291)
	}
}

func BenchmarkFibonacci(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Fibonacci(MaxFibonacciInput)
	}
}

func BenchmarkHashBytes(b *testing.B) {
	buf := []byte("the quick brown fox jumps over the lazy dog")
	b.SetBytes(int64(len(buf)))
	for i := 0; i < b.N; i++ {
		_ = HashBytes(buf)
	}
}
