package models

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type StoreConfig struct {
	DBPath string `mapstructure:"db_path"`
}

type InventoryConfig struct {
	CSVPath string `mapstructure:"csv_path"`
	Source  string `mapstructure:"source"`
}

type AppConfig struct {
	Server    ServerConfig    `mapstructure:"server"`
	Store     StoreConfig     `mapstructure:"store"`
	Inventory InventoryConfig `mapstructure:"inventory"`
}
