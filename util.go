/*
Copyright 2024 The arcode Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package arcode

// ComputeHistogram fills freqs[0:256] with the order-0 byte frequencies
// of block. Used by the static front-end's two-pass frequency
// measurement (SPEC_FULL.md §4).
func ComputeHistogram(block []byte, freqs []int) {
	for i := range freqs {
		freqs[i] = 0
	}

	for _, b := range block {
		freqs[b]++
	}
}
