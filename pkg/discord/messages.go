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

package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/lucasduport/movie-night/pkg/utils"
)

// Common embed colors
const (
	colorInfo    = 0x5BC0DE // teal-ish
	colorSuccess = 0x28A745 // green
	colorWarn    = 0xFFC107 // amber
	colorError   = 0xDC3545 // red
)

// styledEmbed is the shape every bot-authored announcement embed shares.
func styledEmbed(color int, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Description: description,
		Color:       color,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
}

// sendEmbed posts a styled embed to a channel, with optional plain content
// ahead of it. Mentions must ride in the content line: Discord does not
// notify users mentioned inside embed bodies.
func (b *Bot) sendEmbed(channelID string, color int, content, description string) error {
	_, err := b.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: content,
		Embeds:  []*discordgo.MessageEmbed{styledEmbed(color, description)},
	})
	return err
}

func (b *Bot) info(channelID, content, description string) {
	if err := b.sendEmbed(channelID, colorInfo, content, description); err != nil {
		utils.ErrorLog("Discord: failed to send info embed: %v", err)
	}
}

func (b *Bot) success(channelID, content, description string) {
	if err := b.sendEmbed(channelID, colorSuccess, content, description); err != nil {
		utils.ErrorLog("Discord: failed to send success embed: %v", err)
	}
}

// replyEmbedEphemeral answers an interaction with a styled embed only the
// actor sees.
func (b *Bot) replyEmbedEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, color int, title, desc string, fields ...*discordgo.MessageEmbedField) {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: desc,
		Color:       color,
		Fields:      fields,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags:  discordgo.MessageFlagsEphemeral,
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		utils.ErrorLog("Discord: failed to send embed reply: %v", err)
	}
}
