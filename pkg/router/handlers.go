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

package router

import (
	"fmt"
	"strconv"

	nerrors "github.com/NVIDIA/wasm-numerics/pkg/errors"
	"github.com/NVIDIA/wasm-numerics/pkg/kernel"
	"github.com/NVIDIA/wasm-numerics/pkg/query"
	"github.com/NVIDIA/wasm-numerics/pkg/response"
)

// Query defaults.
const (
	DefaultAddOperand     = 0
	DefaultFactorialInput = 5
	DefaultPrimeInput     = 17
	DefaultFibonacciInput = 10
	DefaultHashInput      = "cloudflare"
)

// Operation names reported in response bodies.
const (
	OpAdd       = "add"
	OpFactorial = "factorial"
	OpIsPrime   = "is_prime"
	OpFibonacci = "fibonacci"
	OpHash      = "simple_hash"
)

type statusBody struct {
	Status         string `json:"status"`
	Implementation string `json:"implementation"`
	Timestamp      string `json:"timestamp"`
	Message        string `json:"message"`
}

type addInputs struct {
	A int32 `json:"a"`
	B int32 `json:"b"`
}

type addBody struct {
	Operation string    `json:"operation"`
	Inputs    addInputs `json:"inputs"`
	Result    int32     `json:"result"`
}

// bigResultBody carries 64-bit results as strings.
type bigResultBody struct {
	Operation string `json:"operation"`
	Input     int64  `json:"input"`
	Result    string `json:"result"`
}

type primeBody struct {
	Operation string `json:"operation"`
	Input     uint32 `json:"input"`
	Result    bool   `json:"result"`
}

type hashBody struct {
	Operation string `json:"operation"`
	Input     string `json:"input"`
	Result    uint32 `json:"result"`
}

func (r *Router) handleLanding(_ Request, _ query.Values) (response.Response, error) {
	return response.HTML(r.landing), nil
}

func (r *Router) handleStatus(req Request, _ query.Values) (response.Response, error) {
	ts := req.Timestamp
	if ts == "" {
		ts = r.timestamp
	}

	return jsonResponse(statusBody{
		Status:         "ok",
		Implementation: r.implementation,
		Timestamp:      ts,
		Message:        r.message,
	})
}

func handleAdd(_ Request, q query.Values) (response.Response, error) {
	a := q.Int32("a", DefaultAddOperand)
	b := q.Int32("b", DefaultAddOperand)

	return jsonResponse(addBody{
		Operation: OpAdd,
		Inputs:    addInputs{A: a, B: b},
		Result:    kernel.Add(a, b),
	})
}

func handleFactorial(_ Request, q query.Values) (response.Response, error) {
	n := q.Number("n", DefaultFactorialInput)
	if err := checkBounds("n", n, kernel.MaxFactorialInput); err != nil {
		return response.Response{}, err
	}

	return jsonResponse(bigResultBody{
		Operation: OpFactorial,
		Input:     n,
		Result:    strconv.FormatUint(kernel.Factorial(uint32(n)), 10),
	})
}

// handlePrime reads n as a uint32; anything else, negatives included, falls
// back to the default like other unparseable input.
func handlePrime(_ Request, q query.Values) (response.Response, error) {
	n := q.Uint32("n", DefaultPrimeInput)

	return jsonResponse(primeBody{
		Operation: OpIsPrime,
		Input:     n,
		Result:    kernel.IsPrime(n),
	})
}

func handleFibonacci(_ Request, q query.Values) (response.Response, error) {
	n := q.Number("n", DefaultFibonacciInput)
	if err := checkBounds("n", n, kernel.MaxFibonacciInput); err != nil {
		return response.Response{}, err
	}

	return jsonResponse(bigResultBody{
		Operation: OpFibonacci,
		Input:     n,
		Result:    strconv.FormatUint(kernel.Fibonacci(uint32(n)), 10),
	})
}

func handleHash(_ Request, q query.Values) (response.Response, error) {
	input := q.String("input", DefaultHashInput)

	return jsonResponse(hashBody{
		Operation: OpHash,
		Input:     input,
		Result:    kernel.HashString(input),
	})
}

// checkBounds rejects n outside [0, limit].
func checkBounds(param string, n, limit int64) error {
	if n >= 0 && n <= limit {
		return nil
	}
	return nerrors.NewWithContext(nerrors.ErrCodeInvalidRequest,
		BoundsMessage(limit), map[string]any{
			"param": param,
			"value": n,
		})
}

// BoundsMessage is the 400 message for inputs outside [0, limit].
func BoundsMessage(limit int64) string {
	return fmt.Sprintf("Number must be between 0 and %d", limit)
}

func jsonResponse(v any) (response.Response, error) {
	body, err := response.Marshal(v)
	if err != nil {
		return response.Response{}, nerrors.Wrap(nerrors.ErrCodeInternal, "Internal Server Error", err)
	}
	return response.JSON(body), nil
}
