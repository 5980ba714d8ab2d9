// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package analyzer implements the hoistguard static analysis pass.
//
// # Overview
//
// HoistGuard detects object destructuring inside React hook callbacks that can be
// hoisted before the hook call, so the dependency array tracks the fields instead
// of the whole object.
//
// # Example
//
// Before:
//
//	function Profile({ user }) {
//	  useEffect(() => {
//	    const { name, email } = user;  // the effect re-runs whenever user changes
//	    track(name, email);
//	  }, [user]);
//	}
//
// After applying hoistguard's suggested fix:
//
//	function Profile({ user }) {
//	  const { name, email } = (user) ?? {};
//	  useEffect(() => {
//	    track(name, email);  // the effect re-runs when name or email change
//	  }, [name, email]);
//	}
//
// # Checked Hooks
//
// By default useEffect, useMemo, useCallback and useLayoutEffect are checked, see
// [WithHooks]. A hook call is considered when its callback is a synchronous
// function with a block body and its dependencies are an array literal.
//
// # Suppression
//
// A hook call is skipped when its line carries `// nolint:hoistguard` or
// `// eslint-disable-line enforce-early-destructuring`, or the line before
// `// eslint-disable-next-line enforce-early-destructuring`.
package analyzer
