package project

import (
	"os"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/tokscan/tokscan/util"
)

// ConfFileName is the per-directory scanner policy file.
const ConfFileName = "tokscan.yaml"

// ScanConf holds the scanning policy that is data rather than code: which
// qualified names stay atomic, which extra words are reserved, and the
// default output mode.
type ScanConf struct {
	Atomics  []string `yaml:"atomics"`
	Keywords []string `yaml:"keywords"`
	Plain    bool     `yaml:"plain"`
}

func (c *ScanConf) CreateDefault() {
	c.Atomics = []string{"std::cout", "std::endl"}
	c.Keywords = nil
	c.Plain = false
}

func (c *ScanConf) Save(filepath string, overwrite bool) error {
	if _, err := os.Stat(filepath); !os.IsNotExist(err) {
		if overwrite || util.PromptYN(filepath+" already exists. Overwrite?", false) {
			os.Remove(filepath)
		} else {
			return nil
		}
	}

	yml, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath, yml, 0644)
}

func GetScanConf(dir string) (ScanConf, error) {
	var conf ScanConf

	file, err := os.Open(path.Join(dir, ConfFileName))
	if err != nil {
		return ScanConf{}, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	err = decoder.Decode(&conf)
	if err != nil {
		return ScanConf{}, err
	}

	return conf, nil
}
