package codec

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/wishbone/pkg/domain"
)

// paramsDoc is the on-disk parameter document: the run config fields plus the
// derived components_list sequence.
type paramsDoc struct {
	domain.RunConfig
	ComponentsList []int `json:"components_list"`
}

// WriteParams serializes the run config as a single-line JSON document with
// the derived components_list = [0 .. n_diffusion_components-1] appended.
func WriteParams(path string, cfg domain.RunConfig) error {
	doc := paramsDoc{RunConfig: cfg, ComponentsList: cfg.ComponentsList()}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode params: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write params: %w", err)
	}
	return nil
}
