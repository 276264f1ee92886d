package main

import (
	"flag"
)

// AppFlags holds command-line overrides for the most common inputs. Anything
// not covered here is read from INPUT_* environment variables.
type AppFlags struct {
	ConfigFile string
	WebhookURL string
	Content    string
	Username   string
	AvatarURL  string
	Embeds     string
	RawData    string
	Filename   string
	ThreadID   string
}

func ParseFlags() AppFlags {
	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	webhookURL := flag.String("webhook-url", "", "Discord webhook URL (overrides INPUT_WEBHOOK-URL and config defaults)")
	content := flag.String("content", "", "Message content")
	username := flag.String("username", "", "Override the webhook's default username")
	avatarURL := flag.String("avatar-url", "", "Override the webhook's default avatar URL")
	embeds := flag.String("embeds", "", "JSON array of embed objects (bulk mode)")
	rawData := flag.String("raw-data", "", "Path to a JSON file that replaces payload construction entirely")
	filename := flag.String("filename", "", "Path to a file to attach via multipart upload")
	threadID := flag.String("thread-id", "", "Thread id appended to the webhook URL as a query parameter")

	flag.Parse()

	flags := AppFlags{
		WebhookURL: *webhookURL,
		Content:    *content,
		Username:   *username,
		AvatarURL:  *avatarURL,
		Embeds:     *embeds,
		RawData:    *rawData,
		Filename:   *filename,
		ThreadID:   *threadID,
	}

	if *configFile != "" {
		flags.ConfigFile = *configFile
	} else if *configFileAlias != "" {
		flags.ConfigFile = *configFileAlias
	}

	return flags
}

// AsSource exposes the flag values as an input source layer
func (f AppFlags) AsSource() map[string]string {
	return map[string]string{
		"webhook-url": f.WebhookURL,
		"content":     f.Content,
		"username":    f.Username,
		"avatar-url":  f.AvatarURL,
		"embeds":      f.Embeds,
		"raw-data":    f.RawData,
		"filename":    f.Filename,
		"thread-id":   f.ThreadID,
	}
}
