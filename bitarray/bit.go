package bitarray

import "fmt"

// s 每个分块可存储的位数
const s = uint64(64)

// Bitmap 实现支持存储64个数据的位图
type Bitmap uint64

func (b Bitmap) Set(pos uint64) Bitmap {
	// 通过位移得到指定位置为1的数字，再按位或设置上去
	return b | (1 << pos)
}

func (b Bitmap) Clear(pos uint64) Bitmap {
	// 取反后按位与，清除指定位置
	return b &^ (1 << pos)
}

func (b Bitmap) Has(pos uint64) bool {
	return (b & (1 << pos)) != 0
}

// Count returns the number of set bits.
// http://graphics.stanford.edu/~seander/bithacks.html#CountBitsSetParallel
func (b Bitmap) Count() int {
	val := b
	val -= (val >> 1) & 0x5555555555555555
	val = (val>>2)&0x3333333333333333 + val&0x3333333333333333
	val += val >> 4
	val &= 0x0f0f0f0f0f0f0f0f
	val *= 0x0101010101010101
	return int(byte(val >> 56))
}

// lowest 返回从pos开始(含)第一个为1的位置，不存在时返回s
func (b Bitmap) lowest(pos uint64) uint64 {
	for i := pos; i < s; i++ {
		if b.Has(i) {
			return i
		}
	}
	return s
}

// toNums 读取数据
func (b Bitmap) toNums(offset uint64, nums *[]uint64) {
	for i := uint64(0); i < s; i++ {
		if b.Has(i) {
			*nums = append(*nums, i+offset)
		}
	}
}

// OutOfRangeError is returned when a position is past the capacity of a
// BitmapArray.
type OutOfRangeError uint64

func (err OutOfRangeError) Error() string {
	return fmt.Sprintf("bitarray: position %d out of range", uint64(err))
}

// getIndexAndRemainder 计算分块位置与bit位置
func getIndexAndRemainder(pos uint64) (uint64, uint64) {
	return pos / s, pos % s
}

// BitmapArray bitmap数组，支持存储n*64位bit
type BitmapArray struct {
	blocks []Bitmap // 分块
	size   uint64   // 可寻址的位数
	count  uint64   // 为1的位数
}

// NewBitmapArray 根据指定最大长度，初始化bitmap数组
func NewBitmapArray(size uint64) *BitmapArray {
	idx, bit := getIndexAndRemainder(size)
	if bit > 0 {
		idx++
	}

	return &BitmapArray{
		blocks: make([]Bitmap, idx),
		size:   size,
	}
}

// Set 设置位置为1
func (ba *BitmapArray) Set(pos uint64) error {
	if pos >= ba.size {
		return OutOfRangeError(pos)
	}

	idx, bit := getIndexAndRemainder(pos)
	if !ba.blocks[idx].Has(bit) {
		ba.blocks[idx] = ba.blocks[idx].Set(bit)
		ba.count++
	}
	return nil
}

// Has 判断是否有值
func (ba *BitmapArray) Has(pos uint64) bool {
	if pos >= ba.size {
		return false
	}

	idx, bit := getIndexAndRemainder(pos)
	return ba.blocks[idx].Has(bit)
}

// Clear 清除
func (ba *BitmapArray) Clear(pos uint64) {
	if pos >= ba.size {
		return
	}
	idx, bit := getIndexAndRemainder(pos)
	if ba.blocks[idx].Has(bit) {
		ba.blocks[idx] = ba.blocks[idx].Clear(bit)
		ba.count--
	}
}

// Empty 判断是否为空
func (ba *BitmapArray) Empty() bool {
	return ba.count == 0
}

// Count 统计总数
func (ba *BitmapArray) Count() uint64 {
	return ba.count
}

// Reset clears every bit without changing the capacity.
func (ba *BitmapArray) Reset() {
	for i := range ba.blocks {
		ba.blocks[i] = 0
	}
	ba.count = 0
}

// Next returns the first set position at or after pos.
func (ba *BitmapArray) Next(pos uint64) (uint64, bool) {
	if pos >= ba.size {
		return 0, false
	}

	idx, bit := getIndexAndRemainder(pos)
	for ; idx < uint64(len(ba.blocks)); idx++ {
		// 整块为0时直接跳过
		if ba.blocks[idx] != 0 {
			if i := ba.blocks[idx].lowest(bit); i < s {
				return idx*s + i, true
			}
		}
		bit = 0
	}
	return 0, false
}

// ToNums 将bitmap里存储的数据转成数字数组
func (ba *BitmapArray) ToNums() []uint64 {
	nums := make([]uint64, 0, ba.count)
	for i, block := range ba.blocks {
		block.toNums(uint64(i)*s, &nums)
	}

	return nums
}
