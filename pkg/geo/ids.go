// Copyright (c) 2014, Kevin Walsh.  All rights reserved.
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

package geo

import "strings"

// factID returns the canonical string identifier of a fact: the predicate
// name followed by its arguments in parentheses, comma separated, e.g.
// "col(a,b,c)" or "aconst(a,b,c,1,3)". Two facts with the same predicate and
// the same arguments in the same order always produce the same id; this is
// the identity used for provenance parent lists and for lookups by id.
// Relations dedup on tupleKey below, which carries the same arguments.
func factID(pred string, args []string) string {
	var b strings.Builder
	b.WriteString(pred)
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a)
	}
	b.WriteByte(')')
	return b.String()
}

// tupleKey joins args into a value suitable as a map key for a single
// predicate's relation. Unlike factID it omits the predicate name, since the
// relation a tuple belongs to is already known from which map it lives in.
func tupleKey(args []string) string {
	return strings.Join(args, "\x00")
}
