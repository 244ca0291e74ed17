// Package project handles persistence of floor plans and application
// configuration as JSON files on disk.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/expofloor/boothplan/internal/model"
)

// SavePlan writes the plan to the specified JSON file, creating parent
// directories if they do not exist. A rotating backup of the previous
// file content is kept alongside (see WriteBackup).
func SavePlan(path string, plan model.Plan) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create plan directory: %w", err)
	}

	// Preserve the previous version before overwriting.
	if _, err := os.Stat(path); err == nil {
		if err := WriteBackup(path); err != nil {
			return fmt.Errorf("failed to back up existing plan: %w", err)
		}
	}

	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPlan reads a plan from the specified JSON file. Zones with missing
// optional fields receive the documented defaults.
func LoadPlan(path string) (model.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Plan{}, fmt.Errorf("failed to read plan file: %w", err)
	}
	var plan model.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return model.Plan{}, fmt.Errorf("failed to parse plan file: %w", err)
	}
	applyDefaults(&plan)
	return plan, nil
}

// applyDefaults fills in the explicit fallback values for fields older
// plan files may omit.
func applyDefaults(plan *model.Plan) {
	if plan.Items == nil {
		plan.Items = []model.Zone{}
	}
	if plan.ScaleRatio <= 0 {
		plan.ScaleRatio = 1.0
	}
	for i := range plan.Items {
		z := &plan.Items[i]
		if z.Kind == "" {
			z.Kind = model.KindBooth
		}
		if z.W <= 0 {
			z.W = model.MinZoneSize
		}
		if z.H <= 0 {
			z.H = model.MinZoneSize
		}
	}
}
