package audio

import "fmt"

// the command type enumeration is a closed set. a value outside of the list
// reaching execute() means memory corruption or an engine bug, never a user
// error
type commandType int

const (
	musicPlay commandType = iota
	musicStop
	musicPause
	musicResume
	musicSetPosition
	musicSetVolume
	dmgMusicPlay
	dmgMusicStop
	dmgMusicPause
	dmgMusicResume
	dmgMusicSetPosition
	dmgMusicSetVolume
	soundPlay
	soundPlayEx
	soundStopAll
)

// command is one deferred hardware operation. commands are immutable once
// constructed and carry only the scalar parameters their type requires. all
// parameters are already converted to the hardware scale; the command layer
// does no conversion of its own
type command struct {
	typ      commandType
	id       int
	priority int
	volume   int
	speed    int
	panning  int
	pattern  int
	row      int
	loop     bool
	data     []byte
}

func musicPlayCommand(id int, volume int, loop bool) command {
	return command{typ: musicPlay, id: id, volume: volume, loop: loop}
}

func musicStopCommand() command {
	return command{typ: musicStop}
}

func musicPauseCommand() command {
	return command{typ: musicPause}
}

func musicResumeCommand() command {
	return command{typ: musicResume}
}

func musicSetPositionCommand(position int) command {
	return command{typ: musicSetPosition, id: position}
}

func musicSetVolumeCommand(volume int) command {
	return command{typ: musicSetVolume, volume: volume}
}

func dmgMusicPlayCommand(data []byte, speed int, loop bool) command {
	return command{typ: dmgMusicPlay, data: data, speed: speed, loop: loop}
}

func dmgMusicStopCommand() command {
	return command{typ: dmgMusicStop}
}

func dmgMusicPauseCommand() command {
	return command{typ: dmgMusicPause}
}

func dmgMusicResumeCommand() command {
	return command{typ: dmgMusicResume}
}

func dmgMusicSetPositionCommand(position DmgPosition) command {
	return command{typ: dmgMusicSetPosition, pattern: position.Pattern, row: position.Row}
}

func dmgMusicSetVolumeCommand(leftVolume int, rightVolume int) command {
	// the volume field holds the left channel and the speed field the right
	// channel, mirroring how the hardware packs the two values
	return command{typ: dmgMusicSetVolume, volume: leftVolume, speed: rightVolume}
}

func soundPlayCommand(priority int, id int) command {
	return command{typ: soundPlay, id: id, priority: priority}
}

func soundPlayExCommand(priority int, id int, volume int, speed int, panning int) command {
	return command{typ: soundPlayEx, id: id, priority: priority, volume: volume, speed: speed, panning: panning}
}

func soundStopAllCommand() command {
	return command{typ: soundStopAll}
}

// execute dispatches the command to exactly one driver primitive. no state
// is mutated here; all shadow state changes happened when the command was
// enqueued
func (c command) execute(drv Driver) {
	switch c.typ {
	case musicPlay:
		drv.PlayMusic(c.id, c.volume, c.loop)
	case musicStop:
		drv.StopMusic()
	case musicPause:
		drv.PauseMusic()
	case musicResume:
		drv.ResumeMusic()
	case musicSetPosition:
		drv.SetMusicPosition(c.id)
	case musicSetVolume:
		drv.SetMusicVolume(c.volume)
	case dmgMusicPlay:
		drv.PlayDmgMusic(c.data, c.speed, c.loop)
	case dmgMusicStop:
		drv.StopDmgMusic()
	case dmgMusicPause:
		drv.PauseDmgMusic()
	case dmgMusicResume:
		drv.ResumeDmgMusic()
	case dmgMusicSetPosition:
		drv.SetDmgMusicPosition(c.pattern, c.row)
	case dmgMusicSetVolume:
		drv.SetDmgMusicVolume(c.volume, c.speed)
	case soundPlay:
		drv.PlaySound(c.priority, c.id)
	case soundPlayEx:
		drv.PlaySoundEx(c.priority, c.id, c.volume, c.speed, c.panning)
	case soundStopAll:
		drv.StopAllSounds()
	default:
		panic(fmt.Sprintf("invalid audio command type: %d", c.typ))
	}
}
