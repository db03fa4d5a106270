package engine

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

type ApplicationConfig struct {
	// The application name used for logging and the STL header.
	Name string `toml:"name"`
	// Directory watched for model files.
	AssetsDir string `toml:"assets_dir"`
	// The OFF model the demo loads at startup.
	ModelPath string `toml:"model_path"`
	// Where the triangulated mesh is exported.
	OutputPath string `toml:"output_path"`
	// Timeline frame range, inclusive.
	StartFrame int `toml:"start_frame"`
	EndFrame   int `toml:"end_frame"`
	// Frames per second for the run loop; 0 steps as fast as possible.
	FrameRate int `toml:"frame_rate"`
	// Worker goroutines for the job system.
	WorkerCount int `toml:"worker_count"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Name:        "Uniformity",
		AssetsDir:   "assets",
		ModelPath:   "assets/models/cube.off",
		OutputPath:  "out/cube.stl",
		StartFrame:  0,
		EndFrame:    120,
		FrameRate:   30,
		WorkerCount: 4,
	}
}

/**
 * @brief Reads an application config from a TOML file. Fields missing
 * from the file keep their defaults.
 */
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	config := DefaultApplicationConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}
