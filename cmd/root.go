/*
 * movie-night is a Discord bot for browsing, discussing and tracking movies together.
 * Copyright (C) 2025  Lucas Duport
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/lucasduport/movie-night/pkg/config"
	"github.com/lucasduport/movie-night/pkg/server"
	"github.com/lucasduport/movie-night/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "movie-night",
	Short: "Discord bot for browsing, discussing and tracking movies",
	Long: `movie-night is a Discord bot that turns a forum channel into a shared
movie catalog.

It supports:
- Movie discussion posts with TMDB metadata and genre tags
- Per-user watched lists and watchlists via buttons
- Watch parties with scheduled server events
- Optional Overseerr integration for media requests`,

	Run: func(cmd *cobra.Command, args []string) {
		log.Printf("[movie-night] Server is starting...")
		defer utils.Close()

		conf := &config.AppConfig{
			HostConfig: &config.HostConfiguration{
				Hostname: viper.GetString("hostname"),
				Port:     viper.GetInt("port"),
			},
			HTTPS: viper.GetBool("https"),

			DiscordToken:   config.CredentialString(viper.GetString("discord-token")),
			DevGuildID:     viper.GetString("discord-dev-guild-id"),
			ForumChannelID: viper.GetString("movie-forum-channel"),

			TMDBAPIKey:       config.CredentialString(viper.GetString("tmdb-api-key")),
			TMDBImageBaseURL: viper.GetString("tmdb-image-base-url"),

			OverseerrURL:    viper.GetString("overseerr-url"),
			OverseerrAPIKey: config.CredentialString(viper.GetString("overseerr-api-key")),

			DBPath: viper.GetString("db-path"),

			WatchPartyThreshold:  viper.GetInt("watch-party-threshold"),
			PlaceholderEventTime: time.Duration(viper.GetInt("placeholder-event-days")) * 24 * time.Hour,
			EventDuration:        time.Duration(viper.GetInt("event-duration-hours")) * time.Hour,

			BullyCooldown: time.Duration(viper.GetInt("bully-cooldown-minutes")) * time.Minute,

			Language: viper.GetString("language"),
		}

		if conf.DiscordToken == "" {
			log.Fatal("[movie-night] discord-token is required (flag or DISCORD_TOKEN)")
		}
		if conf.ForumChannelID == "" {
			log.Fatal("[movie-night] movie-forum-channel is required (flag or MOVIE_FORUM_CHANNEL)")
		}
		if conf.TMDBAPIKey == "" {
			log.Fatal("[movie-night] tmdb-api-key is required (flag or TMDB_API_KEY)")
		}

		srv, err := server.NewServer(conf)
		if err != nil {
			log.Fatal(err)
		}

		if err := srv.Serve(); err != nil {
			log.Fatal(err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Config file flag
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.movie-night.yaml)")

	// HTTP API flags
	rootCmd.Flags().Int("port", 8080, "Internal API listening port")
	rootCmd.Flags().String("hostname", "", "Hostname to use in generated URLs")
	rootCmd.Flags().BoolP("https", "", false, "Use HTTPS for generated URLs")

	// Discord flags
	rootCmd.Flags().String("discord-token", "", "Discord bot token")
	rootCmd.Flags().String("discord-dev-guild-id", "", "Guild for instant slash command registration during development")
	rootCmd.Flags().String("movie-forum-channel", "", "Forum channel ID where movie posts are created")

	// TMDB flags
	rootCmd.Flags().String("tmdb-api-key", "", "TMDB API key")
	rootCmd.Flags().String("tmdb-image-base-url", "https://image.tmdb.org/t/p/w500", "Base URL for poster images")

	// Overseerr flags (optional integration)
	rootCmd.Flags().String("overseerr-url", "", "Overseerr base URL")
	rootCmd.Flags().String("overseerr-api-key", "", "Overseerr API key")

	// Storage
	rootCmd.Flags().String("db-path", "movie-night.db", "Path to the SQLite database file")

	// Watch parties
	rootCmd.Flags().Int("watch-party-threshold", 3, "Interested users needed before a watch party can be organized")
	rootCmd.Flags().Int("placeholder-event-days", 7, "Days ahead to schedule the placeholder event")
	rootCmd.Flags().Int("event-duration-hours", 3, "Scheduled event duration in hours")

	// Press tracker
	rootCmd.Flags().Int("bully-cooldown-minutes", 30, "Cooldown window after a third press, in minutes")

	// Localization
	rootCmd.Flags().String("language", "en", "Message catalog language (en, el)")

	// Bind all flags to viper
	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		log.Fatal("Error binding PFlags to viper")
	}
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory and current directory
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".movie-night")
	}

	// Replace hyphens with underscores in environment variables
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Read environment variables
	viper.AutomaticEnv()

	// Read in config file if found
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
