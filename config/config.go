package config

import "github.com/spf13/viper"

var (
	KeyAliasFile     = "aliases.file"
	KeyServeAddress  = "serve.address"
	KeyCatalogExport = "catalog.export"
)

func HasAliasFile() bool {
	return viper.IsSet(KeyAliasFile)
}

func AliasFile() string {
	return viper.GetString(KeyAliasFile)
}

func HasCatalogExport() bool {
	return viper.IsSet(KeyCatalogExport)
}

func CatalogExport() string {
	return viper.GetString(KeyCatalogExport)
}

func ServeAddress() string {
	if addr := viper.GetString(KeyServeAddress); addr != "" {
		return addr
	}

	return DefaultServeAddress()
}

func DefaultServeAddress() string {
	return ":8000"
}
