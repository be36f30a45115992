package config

type yamlConfig struct {
	RecordEmit struct {
		OutputDir string    `yaml:"output_dir"`
		Files     yamlFiles `yaml:"files"`
	} `yaml:"recordemit"`
}

type yamlFiles struct {
	Names       string `yaml:"names"`
	People      string `yaml:"people"`
	Sales       string `yaml:"sales"`
	SalesReport string `yaml:"sales_report"`
	Orders      string `yaml:"orders"`
}
