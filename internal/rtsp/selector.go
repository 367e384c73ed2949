package rtsp

import (
	"errors"
	"log"
	"sort"
	"strings"

	"github.com/bluenviron/gortsplib/v4/pkg/description"
	"github.com/bluenviron/gortsplib/v4/pkg/format"
	"github.com/bluenviron/mediacommon/v2/pkg/codecs/h264"
	"github.com/bluenviron/mediacommon/v2/pkg/codecs/h265"
	"github.com/pion/webrtc/v4"

	"github.com/MariaGolubev/rtsp-to-webrtc/internal/webrtc/codecs"
)

// ErrNoVideoStream is returned when the upstream description advertises no
// video stream with a ranked encoding. Without video there is no viable
// output, so this is fatal at startup.
var ErrNoVideoStream = errors.New("no supported video stream found")

// StreamDescriptor is one upstream-advertised stream flattened out of the
// RTSP description. Index is the upstream media index and stays stable for
// the session lifetime.
type StreamDescriptor struct {
	Index    int
	Kind     webrtc.RTPCodecType
	Encoding string

	// Zero when the stream carries no parseable dimensions.
	Width  int
	Height int

	Media  *description.Media
	Format format.Format
}

// SelectedStream is the outcome of stream selection: the single chosen
// upstream stream for one media kind.
type SelectedStream = StreamDescriptor

// DescribeStreams flattens the upstream session description into stream
// descriptors, one per advertised format.
func DescribeStreams(desc *description.Session) (streams []StreamDescriptor) {
	for index, media := range desc.Medias {
		var kind webrtc.RTPCodecType
		switch media.Type {
		case description.MediaTypeVideo:
			kind = webrtc.RTPCodecTypeVideo
		case description.MediaTypeAudio:
			kind = webrtc.RTPCodecTypeAudio
		default:
			log.Println("RTSP.DescribeStreams: skipping media", index, "of type", media.Type)
			continue
		}

		for _, forma := range media.Formats {
			descriptor := StreamDescriptor{
				Index:    index,
				Kind:     kind,
				Encoding: encodingName(forma),
				Media:    media,
				Format:   forma,
			}
			descriptor.Width, descriptor.Height = videoDimensions(forma)

			streams = append(streams, descriptor)
		}
	}

	return streams
}

// SelectStreams picks exactly one video stream and at most one audio stream.
// Video candidates are ranked by descending pixel area, then ascending codec
// priority; audio candidates by codec priority only. Streams whose encoding
// is not in the priority table are excluded entirely.
func SelectStreams(streams []StreamDescriptor) (video SelectedStream, audio *SelectedStream, err error) {
	var videoCandidates, audioCandidates []StreamDescriptor

	for _, stream := range streams {
		if !codecs.IsRanked(stream.Encoding, stream.Kind) {
			continue
		}

		switch stream.Kind {
		case webrtc.RTPCodecTypeVideo:
			videoCandidates = append(videoCandidates, stream)
		case webrtc.RTPCodecTypeAudio:
			audioCandidates = append(audioCandidates, stream)
		}
	}

	if len(videoCandidates) == 0 {
		return SelectedStream{}, nil, ErrNoVideoStream
	}

	sort.SliceStable(videoCandidates, func(i, j int) bool {
		areaI := videoCandidates[i].Width * videoCandidates[i].Height
		areaJ := videoCandidates[j].Width * videoCandidates[j].Height

		if areaI != areaJ {
			return areaI > areaJ
		}

		return codecs.Priority(videoCandidates[i].Encoding, webrtc.RTPCodecTypeVideo) <
			codecs.Priority(videoCandidates[j].Encoding, webrtc.RTPCodecTypeVideo)
	})

	sort.SliceStable(audioCandidates, func(i, j int) bool {
		return codecs.Priority(audioCandidates[i].Encoding, webrtc.RTPCodecTypeAudio) <
			codecs.Priority(audioCandidates[j].Encoding, webrtc.RTPCodecTypeAudio)
	})

	video = videoCandidates[0]
	if len(audioCandidates) > 0 {
		audio = &audioCandidates[0]
	}

	return video, audio, nil
}

func encodingName(forma format.Format) string {
	switch f := forma.(type) {
	case *format.H265:
		return "h265"
	case *format.H264:
		return "h264"
	case *format.VP9:
		return "vp9"
	case *format.VP8:
		return "vp8"
	case *format.Opus:
		return "opus"
	case *format.G711:
		if f.MULaw {
			return "pcmu"
		}
		return "pcma"
	case *format.G722:
		return "g722"
	default:
		return strings.ToLower(forma.Codec())
	}
}

// videoDimensions parses frame dimensions out of the advertised parameter
// sets where the codec carries them.
func videoDimensions(forma format.Format) (int, int) {
	switch f := forma.(type) {
	case *format.H264:
		if f.SPS != nil {
			var sps h264.SPS
			if err := sps.Unmarshal(f.SPS); err == nil {
				return sps.Width(), sps.Height()
			}
		}
	case *format.H265:
		if f.SPS != nil {
			var sps h265.SPS
			if err := sps.Unmarshal(f.SPS); err == nil {
				return sps.Width(), sps.Height()
			}
		}
	}

	return 0, 0
}
