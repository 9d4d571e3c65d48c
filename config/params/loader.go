package params

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// LoadChainConfigFile loads a chain config yaml file, applies its values on
// top of the mainnet defaults, and activates the result. Unknown keys are
// tolerated so upstream spec yaml files can be used unchanged.
func LoadChainConfigFile(chainConfigFileName string) {
	yamlFile, err := os.ReadFile(chainConfigFileName) // #nosec G304
	if err != nil {
		log.WithError(err).Fatal("Failed to read chain config file.")
	}
	conf := MainnetConfig().Copy()
	if err := yaml.Unmarshal(yamlFile, conf); err != nil {
		log.WithError(err).Fatal("Failed to parse chain config yaml file.")
	}
	log.Debugf("Config file values: %+v", conf)
	OverrideBeaconConfig(conf)
}
