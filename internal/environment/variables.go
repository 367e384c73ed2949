package environment

const (
	// SERVER
	HTTPAddress     = "HTTP_ADDRESS"
	EnableProfiling = "ENABLE_PROFILING"
	StaticPath      = "STATIC_PATH"

	// SSL
	SSLKey  = "SSL_KEY"
	SSLCert = "SSL_CERT"

	// RTSP
	RTSPURL       = "RTSP_URL"
	RTSPUsername  = "RTSP_USERNAME"
	RTSPPassword  = "RTSP_PASSWORD"
	RTSPTransport = "RTSP_TRANSPORT"

	// RELAY
	QueueLength = "QUEUE_LENGTH"

	// WEBRTC
	STUNServers              = "STUN_SERVERS"
	UDPMuxPort               = "UDP_MUX_PORT"
	NAT1To1IP                = "NAT_1_TO_1_IP"
	IncludeLoopbackCandidate = "INCLUDE_LOOPBACK_CANDIDATE"
	InterfaceFilter          = "INTERFACE_FILTER"

	// DEBUGGING
	DebugPrintOffer  = "DEBUG_PRINT_OFFER"
	DebugPrintAnswer = "DEBUG_PRINT_ANSWER"
	DebugRTCP        = "DEBUG_RTCP"
)
