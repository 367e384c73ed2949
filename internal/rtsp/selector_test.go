package rtsp

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pion/webrtc/v4"
)

func videoStream(index int, encoding string, width, height int) StreamDescriptor {
	return StreamDescriptor{
		Index:    index,
		Kind:     webrtc.RTPCodecTypeVideo,
		Encoding: encoding,
		Width:    width,
		Height:   height,
	}
}

func audioStream(index int, encoding string) StreamDescriptor {
	return StreamDescriptor{
		Index:    index,
		Kind:     webrtc.RTPCodecTypeAudio,
		Encoding: encoding,
	}
}

func TestSelectStreamsPrefersCodecRankAtEqualResolution(t *testing.T) {
	video, _, err := SelectStreams([]StreamDescriptor{
		videoStream(0, "h264", 1920, 1080),
		videoStream(1, "h265", 1920, 1080),
	})
	if err != nil {
		t.Fatal(err)
	}

	if video.Encoding != "h265" {
		t.Fatalf("expected h265 at equal resolution, got %s", video.Encoding)
	}
}

func TestSelectStreamsResolutionBeatsCodecRank(t *testing.T) {
	video, _, err := SelectStreams([]StreamDescriptor{
		videoStream(0, "h264", 1920, 1080),
		videoStream(1, "h265", 1280, 720),
	})
	if err != nil {
		t.Fatal(err)
	}

	if video.Encoding != "h264" || video.Index != 0 {
		t.Fatalf("expected the 1920x1080 h264 stream, got stream %d (%s)", video.Index, video.Encoding)
	}
}

func TestSelectStreamsMissingDimensionsSortLowest(t *testing.T) {
	video, _, err := SelectStreams([]StreamDescriptor{
		videoStream(0, "h265", 0, 0),
		videoStream(1, "vp8", 320, 240),
	})
	if err != nil {
		t.Fatal(err)
	}

	if video.Encoding != "vp8" {
		t.Fatalf("expected any parsed resolution to beat missing dimensions, got %s", video.Encoding)
	}
}

func TestSelectStreamsUnrankedEncodingsExcluded(t *testing.T) {
	video, _, err := SelectStreams([]StreamDescriptor{
		videoStream(0, "mjpeg", 3840, 2160),
		videoStream(1, "h264", 1280, 720),
	})
	if err != nil {
		t.Fatal(err)
	}

	if video.Encoding != "h264" {
		t.Fatalf("unranked encoding must be excluded, not deprioritized; got %s", video.Encoding)
	}
}

func TestSelectStreamsNoVideoIsFatal(t *testing.T) {
	_, _, err := SelectStreams([]StreamDescriptor{
		videoStream(0, "mjpeg", 1920, 1080),
		audioStream(1, "opus"),
	})

	if !errors.Is(err, ErrNoVideoStream) {
		t.Fatalf("expected ErrNoVideoStream, got %v", err)
	}
}

func TestSelectStreamsAudioIsOptional(t *testing.T) {
	_, audio, err := SelectStreams([]StreamDescriptor{
		videoStream(0, "h264", 1280, 720),
	})
	if err != nil {
		t.Fatal(err)
	}

	if audio != nil {
		t.Fatalf("expected no audio selection, got %+v", audio)
	}
}

func TestSelectStreamsAudioByCodecRank(t *testing.T) {
	_, audio, err := SelectStreams([]StreamDescriptor{
		videoStream(0, "h264", 1280, 720),
		audioStream(1, "pcmu"),
		audioStream(2, "opus"),
		audioStream(3, "aac"),
	})
	if err != nil {
		t.Fatal(err)
	}

	if audio == nil || audio.Encoding != "opus" {
		t.Fatalf("expected opus audio selection, got %+v", audio)
	}
}

func TestSelectStreamsDeterministic(t *testing.T) {
	streams := []StreamDescriptor{
		videoStream(0, "vp8", 1920, 1080),
		videoStream(1, "h264", 1920, 1080),
		videoStream(2, "h265", 1280, 720),
		audioStream(3, "pcma"),
		audioStream(4, "opus"),
	}

	firstVideo, firstAudio, err := SelectStreams(streams)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 20; i++ {
		video, audio, err := SelectStreams(streams)
		if err != nil {
			t.Fatal(err)
		}

		if !reflect.DeepEqual(video, firstVideo) || !reflect.DeepEqual(audio, firstAudio) {
			t.Fatalf("selection not deterministic on run %d", i)
		}
	}
}
