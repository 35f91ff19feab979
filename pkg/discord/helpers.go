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
	"github.com/bwmarrin/discordgo"
	"github.com/lucasduport/movie-night/pkg/buttons"
	"github.com/lucasduport/movie-night/pkg/utils"
)

// interactionUserID extracts the acting user's ID from an interaction.
func (b *Bot) interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// interactionDisplayName prefers the server nickname over the account name.
func (b *Bot) interactionDisplayName(i *discordgo.InteractionCreate) string {
	if i.Member != nil {
		if i.Member.Nick != "" {
			return i.Member.Nick
		}
		if i.Member.User != nil {
			return i.Member.User.Username
		}
	}
	if i.User != nil {
		return i.User.Username
	}
	return "someone"
}

// isSameUser verifies the interaction comes from the expected user.
func (b *Bot) isSameUser(expected string, i *discordgo.InteractionCreate) bool {
	return expected != "" && b.interactionUserID(i) == expected
}

// isAdmin checks the member's permission bits for Administrator.
func (b *Bot) isAdmin(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0
}

func optString(i *discordgo.InteractionCreate, name string) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}

func subOptString(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range opts {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}

func subOptUserID(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range opts {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionUser {
			// UserValue(nil) avoids a state lookup; we only need the ID.
			if u := opt.UserValue(nil); u != nil {
				return u.ID
			}
		}
	}
	return ""
}

// replyEphemeral answers an interaction with a message only the actor sees.
func (b *Bot) replyEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags:   discordgo.MessageFlagsEphemeral,
			Content: content,
		},
	})
	if err != nil {
		utils.ErrorLog("Discord: failed to send ephemeral reply: %v", err)
	}
}

// replyPublic answers an interaction with a message everyone sees.
func (b *Bot) replyPublic(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		utils.ErrorLog("Discord: failed to send reply: %v", err)
	}
}

// deferUpdate acknowledges a component press without changing the message.
func (b *Bot) deferUpdate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		utils.ErrorLog("Discord: failed to defer update: %v", err)
	}
}

// renderControls turns reconciled control specs into a Discord action row.
// Styles follow the control's role; the link control becomes a URL button.
func renderControls(specs []buttons.Spec) []discordgo.MessageComponent {
	row := discordgo.ActionsRow{}
	for _, spec := range specs {
		btn := discordgo.Button{
			Label:    spec.Label,
			Disabled: spec.Disabled,
			CustomID: spec.CustomID,
		}
		if spec.Emoji != "" {
			btn.Emoji = &discordgo.ComponentEmoji{Name: spec.Emoji}
		}
		switch spec.Role {
		case buttons.RoleWatched:
			btn.Style = discordgo.SuccessButton
		case buttons.RoleWatchlist, buttons.RoleParty:
			btn.Style = discordgo.PrimaryButton
		case buttons.RoleDelete:
			btn.Style = discordgo.DangerButton
		case buttons.RoleLink:
			btn.Style = discordgo.LinkButton
			btn.URL = spec.URL
			btn.CustomID = ""
		default:
			btn.Style = discordgo.SecondaryButton
		}
		row.Components = append(row.Components, btn)
	}
	return []discordgo.MessageComponent{row}
}
