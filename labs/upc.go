/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package labs

// ComputeUPC returns the urine protein/creatinine ratio, both inputs in
// mg/dL. It returns nil when either input is missing or creatinine is
// exactly zero. The result is not rounded.
func ComputeUPC(protein, creatinine *float64) *float64 {
	if protein == nil || creatinine == nil || *creatinine == 0 {
		return nil
	}

	ratio := *protein / *creatinine

	return &ratio
}
