// conf/defaults.go default values for settings
package conf

import (
	"github.com/spf13/viper"
)

// Sets default values for the configuration.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("main.name", "ATCC-Go")
	viper.SetDefault("main.log.enabled", true)
	viper.SetDefault("main.log.path", "atcc.log")

	viper.SetDefault("combine.sourcedir", "datasets/")
	viper.SetDefault("combine.outputdir", "combined_dataset/")
	viper.SetDefault("combine.pattern", "*dataset*")
	viper.SetDefault("combine.extensions", []string{".jpg", ".jpeg", ".png", ".bmp", ".webp"})
	viper.SetDefault("combine.classmap", "")

	viper.SetDefault("analysis.inputdir", "atcc_output/")
	viper.SetDefault("analysis.pcu", map[string]float64{
		"2W":         0.5,
		"3W":         1.0,
		"Car":        1.0,
		"LCV":        1.5,
		"Bus":        3.0,
		"Truck":      3.0,
		"Others":     1.5,
		"Pedestrian": 0.3,
	})
	viper.SetDefault("analysis.morning", "6-12")
	viper.SetDefault("analysis.evening", "16-21")

	viper.SetDefault("dashboard.title", "ATCC Traffic Detection")
	viper.SetDefault("dashboard.port", 8501)
	viper.SetDefault("dashboard.theme", "light")
	viper.SetDefault("dashboard.datadir", "atcc_output/")
}
