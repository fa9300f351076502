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

package server

import (
	"maps"
	"net/http"
	"time"

	nerrors "github.com/NVIDIA/wasm-numerics/pkg/errors"
	"github.com/NVIDIA/wasm-numerics/pkg/response"
	"github.com/NVIDIA/wasm-numerics/pkg/serializer"
	"github.com/google/uuid"
)

// HTTPStatusFromCode maps an error code to an HTTP status. It shares the
// table used by the dispatcher so both layers agree.
func HTTPStatusFromCode(code nerrors.ErrorCode) int {
	return response.StatusFromCode(code)
}

func retryableFromCode(code nerrors.ErrorCode) bool {
	switch code {
	case nerrors.ErrCodeRateLimitExceeded, nerrors.ErrCodeUnavailable, nerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}

// WriteError writes the host error envelope.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code nerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestID(r)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr writes err as the host error envelope. Structured errors
// keep their code, message and context; anything else becomes INTERNAL with
// fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, extraDetails map[string]any) {

	if se, ok := nerrors.As(err); ok {
		details := mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message,
			retryableFromCode(se.Code), details)
		return
	}

	details := mergeDetails(extraDetails, map[string]any{"error": err.Error()})
	WriteError(w, r, http.StatusInternalServerError, nerrors.ErrCodeInternal, fallbackMessage,
		retryableFromCode(nerrors.ErrCodeInternal), details)
}
