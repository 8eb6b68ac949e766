package model

// ---- Franchise graph (read-only input from the league API) ----

type Franchise struct {
	Name   string          `json:"name"`
	Prefix string          `json:"prefix"`
	Logo   *NamedRef       `json:"logo"`
	GM     *NamedRef       `json:"gm"`
	AGMs   []NamedRef      `json:"agms"`
	Teams  []FranchiseTeam `json:"teams"`
}

type NamedRef struct {
	Name string `json:"name"`
}

type FranchiseTeam struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Captain *SteamRef         `json:"captain"`
	Tier    Tier              `json:"tier"`
	Players []FranchisePlayer `json:"players"`
}

// CaptainID returns the captain's Steam ID, or "" for a team without one.
func (t *FranchiseTeam) CaptainID() string {
	if t.Captain == nil {
		return ""
	}
	return t.Captain.Steam64ID
}

// RosterMMR sums the MMR of every rostered player.
func (t *FranchiseTeam) RosterMMR() int {
	total := 0
	for _, p := range t.Players {
		total += p.MMR
	}
	return total
}

type SteamRef struct {
	Steam64ID string `json:"steam64Id"`
}

type Tier struct {
	Name   string `json:"name"`
	MMRCap int    `json:"mmrCap"`
}

// FranchisePlayer is a rostered member of a franchise team. MMR is the
// member's cost against the tier cap.
type FranchisePlayer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	DiscordID string `json:"discordId"`
	Steam64ID string `json:"steam64Id"`
	MMR       int    `json:"mmr"`
}

// CscPlayer is any registered league player, rostered or not.
type CscPlayer struct {
	ID               string      `json:"id"`
	Steam64ID        string      `json:"steam64Id"`
	Name             string      `json:"name"`
	DiscordID        string      `json:"discordId"`
	FaceitName       *string     `json:"faceitName"`
	MMR              int         `json:"mmr"`
	AvatarURL        *string     `json:"avatarUrl"`
	ContractDuration int         `json:"contractDuration"`
	Tier             *NamedRef   `json:"tier"`
	Team             *PlayerTeam `json:"team"`
	Type             PlayerType  `json:"type"`
}

// TierName returns the player's tier name, or "" when unassigned.
func (p *CscPlayer) TierName() string {
	if p.Tier == nil {
		return ""
	}
	return p.Tier.Name
}

type PlayerTeam struct {
	Name      string `json:"name"`
	Franchise struct {
		Name   string `json:"name"`
		Prefix string `json:"prefix"`
	} `json:"franchise"`
}

// PlayerType is a player's league status.
type PlayerType string

const (
	TypeSigned             PlayerType = "SIGNED"
	TypeFreeAgent          PlayerType = "FREE_AGENT"
	TypeDraftEligible      PlayerType = "DRAFT_ELIGIBLE"
	TypePermanentFreeAgent PlayerType = "PERMANENT_FREE_AGENT"
	TypeSpectator          PlayerType = "SPECTATOR"
	TypeInactiveReserve    PlayerType = "INACTIVE_RESERVE"
	TypeSignedSubbed       PlayerType = "SIGNED_SUBBED"
	TypeTempSigned         PlayerType = "TEMPSIGNED"
	TypePermFATempSigned   PlayerType = "PERMFA_TEMP_SIGNED"
	TypeUnrosteredGM       PlayerType = "UNROSTERED_GM"
	TypeUnrosteredAGM      PlayerType = "UNROSTERED_AGM"
	TypeInactive           PlayerType = "INACTIVE"
	TypeSignedPromoted     PlayerType = "SIGNED_PROMOTED"
	TypeExpired            PlayerType = "EXPIRED"
)

// FreeAgentTypes are the statuses that can be signed as a replacement.
var FreeAgentTypes = []PlayerType{TypeFreeAgent, TypeDraftEligible, TypePermanentFreeAgent}

// IsFreeAgent reports whether t is one of FreeAgentTypes.
func (t PlayerType) IsFreeAgent() bool {
	for _, fa := range FreeAgentTypes {
		if t == fa {
			return true
		}
	}
	return false
}

// Label returns the short display label for the status.
func (t PlayerType) Label() string {
	switch t {
	case TypeSigned:
		return "Signed"
	case TypeSignedPromoted:
		return "Signed (Promoted)"
	case TypeFreeAgent:
		return "FA"
	case TypeDraftEligible:
		return "DE"
	case TypePermanentFreeAgent:
		return "PFA"
	case TypeInactiveReserve:
		return "IR"
	case TypeSpectator:
		return "Spectator"
	case TypeSignedSubbed:
		return "Subbed"
	case TypeTempSigned:
		return "Temp"
	case TypePermFATempSigned:
		return "PFA Temp"
	case TypeUnrosteredGM:
		return "GM"
	case TypeUnrosteredAGM:
		return "AGM"
	case TypeInactive:
		return "Inactive"
	case TypeExpired:
		return "Expired"
	default:
		return string(t)
	}
}
