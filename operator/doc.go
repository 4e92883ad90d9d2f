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
Package operator implements the signalql operator library as pure functions.

Stateless operators work on types.Value and follow the broadcast rule of the
types package:

	Compare     EQ NE LT LE GT GE
	Arithmetic  ADD SUB MUL DIV POW
	Abs         ABS
	Logical     AND OR
	Aggregate   MAX MIN AVG (montanaflynn/stats)
	Count       COUNT

The temporal detectors scan one series from the second sample on, so the
first output sample is always false:

	Jump         one-sample transition between two membership sets
	Hold         transition followed by a stay of at least a duration
	After        crossing of a start level, then holding past an end level
	MinDuration  drops true runs shorter than a duration (DURATION)

Durations are given in seconds and converted to sample counts by
SampleThreshold.
*/
package operator
