package api

// StatusResponse is the v3 status document of api.mcsrvstat.us. Offline servers only
// carry Online, Hostname, IP and Port.
type StatusResponse struct {
	Online   bool       `json:"online"`
	IP       string     `json:"ip"`
	Port     int        `json:"port"`
	Hostname string     `json:"hostname"`
	Version  string     `json:"version"`
	Software string     `json:"software"`
	Gamemode string     `json:"gamemode"`
	Map      Text       `json:"map"`
	MOTD     Lines      `json:"motd"`
	Players  PlayerList `json:"players"`
}

type Text struct {
	Raw   string `json:"raw"`
	Clean string `json:"clean"`
	HTML  string `json:"html"`
}

type Lines struct {
	Raw   []string `json:"raw"`
	Clean []string `json:"clean"`
	HTML  []string `json:"html"`
}

type PlayerList struct {
	Online int      `json:"online"`
	Max    int      `json:"max"`
	List   []Player `json:"list"`
}

type Player struct {
	Name string `json:"name"`
	UUID string `json:"uuid"`
}
