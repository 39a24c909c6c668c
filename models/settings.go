package models

// AppName is the product name shown in window titles and user agents
const AppName = "SAP Opener"

// AppVersion is the current release tag, compared against the remote feed
const AppVersion = "v1.1.0"

// RepoSlug is the GitHub owner/name the updater checks for releases
const RepoSlug = "lukash333/SAPp-Opener"

// Configuration section names
const (
	SectionDefault   = "DEFAULT"
	SectionSAPClient = "DEFAULT_SAP_CLIENT"
	SectionApp       = "APP"
	SectionWeb       = "WEB"
)

// Configuration keys in the DEFAULT section
const (
	KeyAppName         = "app_name"
	KeyVersion         = "version"
	KeyLauncherPath    = "sapshcut_path"
	KeyDefaultLanguage = "default_sap_lang"
)

// DefaultLanguage is the fallback SAP logon language
const DefaultLanguage = "EN"

// LauncherNotFound is the sentinel stored when no sapshcut executable exists
const LauncherNotFound = "None"

// DefaultSettings returns the built-in configuration defaults, keyed by
// section. Merged into the settings file without overwriting user keys,
// except the version marker which always takes the built-in value.
func DefaultSettings() map[string]map[string]string {
	return map[string]map[string]string{
		SectionDefault: {
			KeyAppName:         AppName,
			KeyVersion:         AppVersion,
			"position_x":       "0",
			"position_y":       "0",
			KeyDefaultLanguage: DefaultLanguage,
		},
		SectionSAPClient: {
			"QG1": "200",
		},
		SectionApp: {
			"excel": `C:\Program Files (x86)\Microsoft Office\root\Office16\EXCEL.EXE`,
		},
		SectionWeb: {
			"w": "https://pl.wikipedia.org/wiki/",
		},
	}
}
