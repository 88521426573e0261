package notifier

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/domain/listing"
	"github.com/x-xyz/listingsync/service/ens"
)

type Config struct {
	BotKey    string
	ChannelId string
	// AssetUrl is formatted with the asset contract and token id
	AssetUrl string
	Ens      ens.ENS
}

type sender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type discordNotifier struct {
	config  Config
	discord sender
}

type nop struct{}

func (nop) OnStatusChanged(ctx.Ctx, *listing.Listing, listing.Status) {}

// New posts an embed to discord for every sold listing. Without a bot key it
// returns an observer that does nothing.
func New(config Config) (listing.StatusObserver, error) {
	if config.BotKey == "" || config.ChannelId == "" {
		return nop{}, nil
	}
	discord, err := discordgo.New(fmt.Sprintf("Bot %s", config.BotKey))
	if err != nil {
		return nil, err
	}
	return &discordNotifier{config, discord}, nil
}

func (n *discordNotifier) OnStatusChanged(c ctx.Ctx, l *listing.Listing, from listing.Status) {
	if l.Status != listing.StatusSold {
		return
	}

	seller := "-"
	if n.config.Ens != nil {
		if name, err := n.config.Ens.ReverseResolve(c, l.Seller); err == nil && name != "" {
			seller = name
		}
	}

	msg := &discordgo.MessageEmbed{
		Title: "Item sold!",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Item", Value: l.CollectionName},
			{Name: "Seller", Value: fmt.Sprintf("%s (%s)", l.Seller, seller)},
			{Name: "Price", Value: fmt.Sprintf("%s ETH", l.Price)},
		},
	}
	if n.config.AssetUrl != "" {
		msg.Description = fmt.Sprintf(n.config.AssetUrl, l.AssetContract, l.TokenId)
	}

	if _, err := n.discord.ChannelMessageSendEmbed(n.config.ChannelId, msg); err != nil {
		c.WithField("err", err).WithField("listingId", l.Id).Warn("discord.ChannelMessageSendEmbed failed")
	}
}
