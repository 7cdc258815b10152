package util

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

type Secrets struct {
	OpenAIApiKey string        `json:"openai"`
	Alpaca       AlpacaSecrets `json:"alpaca"`
	Db           DbSecrets     `json:"db"`
}

type AlpacaSecrets struct {
	ApiKey    string `json:"apiKey"`
	ApiSecret string `json:"apiSecret"`
	Endpoint  string `json:"endpoint"`
}

type DbSecrets struct {
	Host      string `json:"host"`
	User      string `json:"user"`
	Port      string `json:"port"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	EnableSsl bool   `json:"enableSsl"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

func LoadSecrets() (*Secrets, error) {
	secretsFile := "secrets.json"
	if os.Getenv("ASSETRISK_ENV") == "dev" {
		secretsFile = "secrets-dev.json"
	} else if os.Getenv("ASSETRISK_ENV") == "test" {
		secretsFile = "secrets-test.json"
	}
	f, err := os.ReadFile(secretsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", secretsFile, err)
	}

	secrets := Secrets{}
	err = json.Unmarshal(f, &secrets)
	if err != nil {
		return nil, err
	}

	return &secrets, nil
}

func DecimalPointer(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func StringPointer(s string) *string {
	return &s
}
