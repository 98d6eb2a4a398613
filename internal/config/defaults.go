package config

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"gemini_cmd":    "gemini",
		"default_model": "gemini-2.5-pro",
		"flash_model":   "gemini-2.5-flash",
		"allowed_models": []string{
			"gemini-3-pro-preview",
			"gemini-3-flash-preview",
			"gemini-2.5-pro",
			"gemini-2.5-flash",
		},
		"init_policy": "auto",
		"timeout":     0,
	}
}
