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

// Command libnumerics builds the dispatcher and kernels as a C shared library:
//
//	go build -buildmode=c-shared -o libnumerics.so ./cmd/libnumerics
//
// The generated header declares:
//
//	char*    handle(char* method, char* url, char* query);
//	char*    handle_at(char* method, char* url, char* query, char* timestamp);
//	void     release(char* ptr);
//	int32_t  add(int32_t a, int32_t b);
//	uint64_t factorial(uint32_t n);
//	int32_t  is_prime(uint32_t n);
//	uint64_t fibonacci(uint32_t n);
//	uint32_t hash_bytes(uint8_t* ptr, size_t len);
//
// Strings returned by handle and handle_at are allocated with malloc and
// owned by the caller, who must pass each one to release exactly once.
package main

/*
#include <stdint.h>
#include <stdlib.h>
#include <string.h>
*/
import "C"

import (
	"unsafe"

	"github.com/NVIDIA/wasm-numerics/pkg/boundary"
)

//export handle
func handle(method, url, query *C.char) *C.char {
	out := boundary.Default().HandleBytes(goBytes(method), goBytes(url), goBytes(query))
	return C.CString(out)
}

//export handle_at
func handle_at(method, url, query, timestamp *C.char) *C.char {
	out := boundary.Default().HandleBytesAt(goBytes(method), goBytes(url), goBytes(query), goBytes(timestamp))
	return C.CString(out)
}

//export release
func release(ptr *C.char) {
	if ptr == nil {
		return
	}
	C.free(unsafe.Pointer(ptr))
}

//export add
func add(a, b C.int32_t) C.int32_t {
	return C.int32_t(boundary.Add(int32(a), int32(b)))
}

//export factorial
func factorial(n C.uint32_t) C.uint64_t {
	return C.uint64_t(boundary.Factorial(uint32(n)))
}

//export is_prime
func is_prime(n C.uint32_t) C.int32_t {
	return C.int32_t(boundary.IsPrime(uint32(n)))
}

//export fibonacci
func fibonacci(n C.uint32_t) C.uint64_t {
	return C.uint64_t(boundary.Fibonacci(uint32(n)))
}

//export hash_bytes
func hash_bytes(ptr *C.uint8_t, length C.size_t) C.uint32_t {
	if ptr == nil || length == 0 {
		return C.uint32_t(boundary.HashBytes(nil))
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), int(length))
	return C.uint32_t(boundary.HashBytes(buf))
}

// goBytes copies a NUL-terminated C string; nil stays nil so the adapter can
// tell a null pointer from an empty string.
func goBytes(s *C.char) []byte {
	if s == nil {
		return nil
	}
	b := C.GoBytes(unsafe.Pointer(s), C.int(C.strlen(s)))
	if b == nil {
		b = []byte{}
	}
	return b
}

func main() {}
