/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package menu

import "errors"

// errQuit ends the menu loop without an error. It is returned when the user
// picks exit or input runs out.
var errQuit = errors.New("quit")
