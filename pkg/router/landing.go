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

// LandingPage is the HTML served at /.
const LandingPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Numeric Kernels</title>
<style>
body { font-family: sans-serif; max-width: 40rem; margin: 2rem auto; line-height: 1.5; }
code { background: #f2f2f2; padding: 0 .25rem; }
</style>
</head>
<body>
<h1>Numeric Kernels</h1>
<p>Arithmetic primitives served through a minimal request dispatcher.</p>
<ul>
<li><a href="/status"><code>GET /status</code></a> service status</li>
<li><a href="/add?a=5&amp;b=3"><code>GET /add?a=5&amp;b=3</code></a> integer addition</li>
<li><a href="/factorial?n=5"><code>GET /factorial?n=5</code></a> factorial, 0 to 20</li>
<li><a href="/prime?n=17"><code>GET /prime?n=17</code></a> primality test</li>
<li><a href="/fibonacci?n=10"><code>GET /fibonacci?n=10</code></a> Fibonacci, 0 to 40</li>
<li><a href="/hash?input=cloudflare"><code>GET /hash?input=cloudflare</code></a> djb2 hash</li>
</ul>
</body>
</html>
`
