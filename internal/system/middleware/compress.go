/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package middleware

import (
	"io"
	"net/http"

	"github.com/andybalholm/brotli"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// compressibleTypes are the content types produced by the widget endpoints.
var compressibleTypes = []string{
	"text/html",
	"text/css",
	"application/json",
}

// Compress returns a middleware compressing widget responses with brotli, gzip or deflate,
// depending on what the client accepts.
func Compress(level int) func(http.Handler) http.Handler {
	compressor := chimiddleware.NewCompressor(level, compressibleTypes...)
	compressor.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	return compressor.Handler
}
