/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
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

package widget

// Mode is the form the widget is showing.
type Mode string

// Supported widget modes.
const (
	ModeSignIn Mode = "sign-in"
	ModeSignUp Mode = "sign-up"
)

// ParseMode parses a mode value. Empty and unknown values yield ModeSignIn.
func ParseMode(value string) Mode {
	if Mode(value) == ModeSignUp {
		return ModeSignUp
	}
	return ModeSignIn
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeSignUp {
		return ModeSignIn
	}
	return ModeSignUp
}

// IsSignIn reports whether the mode is ModeSignIn.
func (m Mode) IsSignIn() bool {
	return m != ModeSignUp
}
