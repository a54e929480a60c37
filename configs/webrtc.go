package configs

import (
	"github.com/pion/webrtc/v4"
	"github.com/spf13/viper"
)

// ICEServers should be run after viper has read the config file. It assembles the
// ICE server list that browser clients fetch before creating their peer connections.
// STUN entries carry no credentials; a TURN entry is included only when configured.
func ICEServers() []webrtc.ICEServer {
	var servers []webrtc.ICEServer

	if stun := viper.GetStringSlice("webrtc.stun-servers"); len(stun) > 0 {
		servers = append(servers, webrtc.ICEServer{URLs: stun})
	}

	if turn := viper.GetString("webrtc.turn-server"); turn != "" {
		servers = append(servers, webrtc.ICEServer{
			URLs:           []string{turn},
			Username:       viper.GetString("webrtc.turn-username"),
			Credential:     viper.GetString("webrtc.turn-credential"),
			CredentialType: webrtc.ICECredentialTypePassword,
		})
	}
	return servers
}
