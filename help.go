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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avltree %s**

Build, mutate and inspect a self-balancing binary search tree of integers from the shell.
Every mutation reports the rotations it needed, so you can watch the tree rebalance.

Built with Go %s

# 1. Commands
* **build** *values...* [--delete *v*]: insert the values, then delete, then print the tree
* **run** *script*: apply an operation script, use **-** to read standard input
* **stress**: random inserts and deletes, checking every invariant after each step
* **settings**: show the configuration file, creating it when missing
* **version**: print the version

# 2. Scripts
One operation per line, anything after # is a comment:

    insert 10 20 30
    delete 20
    search 10
    print
    clear

# 3. Configuration
Settings live in ~/.avltree.yaml, or in the file named by AVLTREE_CONFIG.

# License
Licensed under the Apache License, Version 2.0
Copyright 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
