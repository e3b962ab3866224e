/*
 * Copyright (c) 2026, Renolink Inc. (https://renolink.io).
 *
 * Renolink Inc. licenses this file to you under the Apache License,
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

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  hello  "))
	assert.Equal(t, "hello", SanitizeString("hel\x00lo"))
	assert.Equal(t, "tabfree", SanitizeString("tab\tfree"))
	assert.Equal(t, "", SanitizeString("   "))
}

func TestSanitizeStringMap(t *testing.T) {
	input := map[string]string{" title ": " Bathroom refresh ", "notes": "line\nbreak"}

	output := SanitizeStringMap(input)

	assert.Equal(t, "Bathroom refresh", output["title"])
	assert.Equal(t, "linebreak", output["notes"])
}

func TestSanitizeStringMapNil(t *testing.T) {
	assert.Nil(t, SanitizeStringMap(nil))
}

func TestMergeStringMaps(t *testing.T) {
	dst := map[string]string{"a": "1", "b": "2"}
	src := map[string]string{"b": "3", "c": "4"}

	merged := MergeStringMaps(dst, src)

	assert.Equal(t, map[string]string{"a": "1", "b": "3", "c": "4"}, merged)
}

func TestMergeStringMapsNilDestination(t *testing.T) {
	merged := MergeStringMaps(nil, map[string]string{"a": "1"})
	assert.Equal(t, map[string]string{"a": "1"}, merged)
}

func TestGetAllowedOrigin(t *testing.T) {
	allowed := []string{"localhost:3000", "app.renolink.io"}

	assert.Equal(t, "localhost:3000", GetAllowedOrigin(allowed, "http://localhost:3000"))
	assert.Equal(t, "app.renolink.io", GetAllowedOrigin(allowed, "https://app.renolink.io"))
	assert.Equal(t, "", GetAllowedOrigin(allowed, "https://evil.test"))
	assert.Equal(t, "", GetAllowedOrigin(nil, "http://localhost:3000"))
}

func TestGenerateUUID(t *testing.T) {
	first := GenerateUUID()
	second := GenerateUUID()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	assert.Len(t, first, 36)
}
