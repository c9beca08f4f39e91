// Copyright 2025 Naren Yellavula
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

package main

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Rendered reports are only reused within one session
	reportCacheExpiration = 10 * time.Minute
	// Clean up expired entries every minute
	reportCacheCleanup = time.Minute
)

// NewReportCache creates a cache for rendered tree reports keyed by
// session revision.
func NewReportCache() *cache.Cache {
	return cache.New(reportCacheExpiration, reportCacheCleanup)
}

func CacheReport(c *cache.Cache, revision int, text string) {
	c.Set(strconv.Itoa(revision), text, cache.DefaultExpiration)
}

func GetReport(c *cache.Cache, revision int) (string, bool) {
	val, ok := c.Get(strconv.Itoa(revision))
	if !ok {
		return "", false
	}
	return val.(string), true
}
