/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
Package dataset provides the column stores a signalql evaluation reads from.

Source is the read-only interface consumed by the SELECT operation. Frame is
the in-memory implementation:

	frame, _ := dataset.NewFrame(start, start.Add(time.Second), 100*time.Millisecond)
	_ = dataset.AddColumn(frame, "gear", []uint8{1, 1, 2, 2, 3, 3, 3, 2, 2, 1})
	_ = frame.Derive("high_gear", "gear >= 3 ? 1 : 0")

Frames can be stored as mebo numeric blobs with EncodeMebo and read back
with DecodeMebo. A Manifest (YAML or JSON) combines a stored blob, inline
columns and derived columns into one Frame.
*/
package dataset
