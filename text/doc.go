// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package text provides the storage capability wrapped by an attributed text,
// along with reference storages.
//
// A [Storage] is any sequence with a length, measured in whatever index unit
// the storage uses. An [Editable] storage can additionally replace ranges of
// itself in place.
//
// [String] and [Bytes] are read-only, byte-indexed views. [Buffer] is an owned,
// editable UTF-8 buffer, also byte-indexed. [Graphemes] is an editable storage
// that is indexed by extended grapheme cluster rather than byte.
package text
