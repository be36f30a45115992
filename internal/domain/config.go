package domain

// Config represents the recordemit configuration loaded from recordemit.yaml.
type Config struct {
	OutputDir string
	Files     FilesConfig
}

// FilesConfig names the output file of each emitter.
type FilesConfig struct {
	Names       string
	People      string
	Sales       string
	SalesReport string
	Orders      string
}

// DefaultConfig provides sane defaults if recordemit.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		OutputDir: ".",
		Files: FilesConfig{
			Names:       "output.txt",
			People:      "output.json",
			Sales:       "sales_output.csv",
			SalesReport: "sales_report.csv",
			Orders:      "orders_output.csv",
		},
	}
}

// List returns the file names in emitter order.
func (f FilesConfig) List() []string {
	return []string{f.Names, f.People, f.Sales, f.SalesReport, f.Orders}
}

// WorkspaceSpec describes where `recordemit init` scaffolds a config.
type WorkspaceSpec struct {
	Root string
}
