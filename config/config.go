package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is loaded once at startup and is read-only thereafter.
type Config struct {
	Workdir     string      `yaml:"workdir"`
	Google      Google      `yaml:"google"`
	Spreadsheet Spreadsheet `yaml:"spreadsheet"`
	WHD         WHD         `yaml:"whd"`
	Log         Log         `yaml:"log"`
}

// Google holds the Google API credentials and the cached OAuth2 tokens file.
type Google struct {
	Credentials string `yaml:"credentials"`
	Tokens      string `yaml:"tokens"`
}

// Spreadsheet identifies the form responses spreadsheet and its active and archive worksheets.
type Spreadsheet struct {
	URL     string `yaml:"url"`
	ID      string `yaml:"id"`
	Active  string `yaml:"active"`
	Archive string `yaml:"archive"`
}

// WHD is the Web Help Desk endpoint and the fixed attributes of every ticket created.
type WHD struct {
	Host         string `yaml:"host"`
	APIKey       string `yaml:"apikey"`
	ProblemType  int    `yaml:"problem-type"`
	Location     int    `yaml:"location"`
	StatusType   int    `yaml:"status-type"`
	PriorityType int    `yaml:"priority-type"`
}

type Log struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

const (
	DefaultActive  = "Form Responses 1"
	DefaultArchive = "Archive"
)

var spreadsheetURL = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)

func NewConfig(workdir string) *Config {
	return &Config{
		Workdir: workdir,
		Spreadsheet: Spreadsheet{
			Active:  DefaultActive,
			Archive: DefaultArchive,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads the YAML configuration file, applies any .env file and environment overrides,
// fills in the derived defaults and validates the result. A missing configuration file is
// not an error if the environment supplies everything that is required.
func (c *Config) Load(file string) error {
	if file != "" {
		bytes, err := os.ReadFile(file)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if err == nil {
			if err := yaml.Unmarshal(bytes, c); err != nil {
				return fmt.Errorf("invalid configuration file %v (%w)", file, err)
			}
		}
	}

	if err := loadEnv(file); err != nil {
		return err
	}

	if err := c.overlay(); err != nil {
		return err
	}

	c.defaults()

	return c.validate()
}

// SpreadsheetID returns the configured spreadsheet ID, extracting it from the spreadsheet URL
// if only the URL was given.
func (c *Config) SpreadsheetID() string {
	if id := strings.TrimSpace(c.Spreadsheet.ID); id != "" {
		return id
	}

	if match := spreadsheetURL.FindStringSubmatch(strings.TrimSpace(c.Spreadsheet.URL)); len(match) > 1 {
		return match[1]
	}

	return ""
}

func loadEnv(file string) error {
	candidates := []string{".env"}
	if file != "" {
		candidates = append(candidates, filepath.Join(filepath.Dir(file), ".env"))
	}

	for _, f := range candidates {
		if _, err := os.Stat(f); err != nil {
			continue
		}

		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("error loading %v (%w)", f, err)
		}
	}

	return nil
}

func (c *Config) overlay() error {
	strs := map[string]*string{
		"ASKATECH_WORKDIR":            &c.Workdir,
		"ASKATECH_GOOGLE_CREDENTIALS": &c.Google.Credentials,
		"ASKATECH_GOOGLE_TOKENS":      &c.Google.Tokens,
		"ASKATECH_SPREADSHEET":        &c.Spreadsheet.URL,
		"ASKATECH_ACTIVE_WORKSHEET":   &c.Spreadsheet.Active,
		"ASKATECH_ARCHIVE_WORKSHEET":  &c.Spreadsheet.Archive,
		"ASKATECH_WHD_HOST":           &c.WHD.Host,
		"ASKATECH_WHD_APIKEY":         &c.WHD.APIKey,
		"ASKATECH_LOG_FILE":           &c.Log.File,
		"ASKATECH_LOG_LEVEL":          &c.Log.Level,
	}

	ints := map[string]*int{
		"ASKATECH_WHD_PROBLEM_TYPE":  &c.WHD.ProblemType,
		"ASKATECH_WHD_LOCATION":      &c.WHD.Location,
		"ASKATECH_WHD_STATUS_TYPE":   &c.WHD.StatusType,
		"ASKATECH_WHD_PRIORITY_TYPE": &c.WHD.PriorityType,
	}

	for k, p := range strs {
		if v, ok := os.LookupEnv(k); ok && strings.TrimSpace(v) != "" {
			*p = strings.TrimSpace(v)
		}
	}

	for k, p := range ints {
		if v, ok := os.LookupEnv(k); ok && strings.TrimSpace(v) != "" {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err != nil {
				return fmt.Errorf("invalid %v '%v' (%w)", k, v, err)
			} else {
				*p = n
			}
		}
	}

	// ASKATECH_SPREADSHEET accepts either a URL or a bare ID
	if v := c.Spreadsheet.URL; v != "" && !strings.HasPrefix(v, "https://") {
		c.Spreadsheet.ID = v
		c.Spreadsheet.URL = ""
	}

	return nil
}

func (c *Config) defaults() {
	if c.Google.Tokens == "" && c.Google.Credentials != "" {
		_, file := filepath.Split(c.Google.Credentials)
		name := strings.TrimSuffix(file, filepath.Ext(file))
		c.Google.Tokens = filepath.Join(c.Workdir, ".google", fmt.Sprintf("%s.sheets", name))
	}

	if c.Log.File == "" {
		c.Log.File = filepath.Join(c.Workdir, "ask-a-tech.log")
	}
}

func (c *Config) validate() error {
	var errs []error

	if strings.TrimSpace(c.Google.Credentials) == "" {
		errs = append(errs, fmt.Errorf("missing google.credentials"))
	}

	if c.SpreadsheetID() == "" {
		if c.Spreadsheet.URL != "" {
			errs = append(errs, fmt.Errorf("invalid spreadsheet URL '%v' - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'", c.Spreadsheet.URL))
		} else {
			errs = append(errs, fmt.Errorf("missing spreadsheet.url or spreadsheet.id"))
		}
	}

	if strings.TrimSpace(c.Spreadsheet.Active) == "" {
		errs = append(errs, fmt.Errorf("missing spreadsheet.active"))
	}

	if strings.TrimSpace(c.Spreadsheet.Archive) == "" {
		errs = append(errs, fmt.Errorf("missing spreadsheet.archive"))
	}

	if strings.EqualFold(strings.TrimSpace(c.Spreadsheet.Active), strings.TrimSpace(c.Spreadsheet.Archive)) {
		errs = append(errs, fmt.Errorf("active and archive worksheets must be different"))
	}

	if strings.TrimSpace(c.WHD.Host) == "" {
		errs = append(errs, fmt.Errorf("missing whd.host"))
	}

	if strings.TrimSpace(c.WHD.APIKey) == "" {
		errs = append(errs, fmt.Errorf("missing whd.apikey"))
	}

	return errors.Join(errs...)
}
