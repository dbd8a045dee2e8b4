package audio

// MusicItem identifies a piece of streamed music that has been registered
// with the hardware driver. The id is opaque to the manager
type MusicItem struct {
	id int
}

// NewMusicItem creates a MusicItem with the given driver id
func NewMusicItem(id int) MusicItem {
	return MusicItem{id: id}
}

// ID returns the driver id of the item
func (it MusicItem) ID() int {
	return it.id
}

// SoundItem identifies a sound effect that has been registered with the
// hardware driver
type SoundItem struct {
	id int
}

// NewSoundItem creates a SoundItem with the given driver id
func NewSoundItem(id int) SoundItem {
	return SoundItem{id: id}
}

// ID returns the driver id of the item
func (it SoundItem) ID() int {
	return it.id
}

// DmgMusicItem is a piece of DMG style tracker music. Unlike the other item
// types it carries the module data itself, which the manager also uses as
// the marker for whether DMG music is active
type DmgMusicItem struct {
	data []byte
}

// NewDmgMusicItem creates a DmgMusicItem from raw module data. The data is
// not validated here, only at the point it is loaded or played
func NewDmgMusicItem(data []byte) DmgMusicItem {
	if len(data) == 0 {
		panic("dmg music item has no data")
	}
	return DmgMusicItem{data: data}
}

// Data returns the raw module data of the item
func (it DmgMusicItem) Data() []byte {
	return it.data
}

// DmgPosition is a position in a piece of DMG music, expressed as a pattern
// number and a row within that pattern rather than as a time offset
type DmgPosition struct {
	Pattern int
	Row     int
}
