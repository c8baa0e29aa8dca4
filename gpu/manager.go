// Package gpu is an optional webgpu-accelerated backend for
// block.BlockLattice2D's collideAndStream step (spec.md §4.4.3),
// grounded on voxelrt/rt/gpu/manager.go's buffer-manager idiom: a
// device-resident struct owning the storage buffers and compute
// pipeline, with ensureBuffer-style geometric-growth reallocation and an
// explicit upload/dispatch/readback cycle rather than a persistent
// mapping.
//
// This backend never replaces block.BlockLattice2D's CPU collideAndStream
// (spec.md §9 Non-goals exclude GPU execution from the reference
// semantics); it is a drop-in accelerator a caller opts into explicitly
// and is expected to reproduce the same BGK collision the CPU path runs.
package gpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/palabos-go/lbm/block"
)

// SafeBufferSizeLimit mirrors the teacher's buffer-manager safety check
// (manager.go, "SafeBufferSizeLimit"): a soft ceiling above which a
// growth is logged rather than silently allocated.
const SafeBufferSizeLimit = 1024 * 1024 * 1024

// collideStreamShaderSource is the compute-shader counterpart to
// block.BlockLattice2D.CollideAndStream: one invocation per lattice
// site, BGK-relaxing its own Q populations toward equilibrium and then
// writing each relaxed population into its streamed neighbor's slot in
// the output buffer (a pair-swap stream performed by the write address
// rather than Go's in-place pair-swap, since a compute shader has no
// notion of processing cells in a skewed order).
const collideStreamShaderSource = `
struct Params {
    nx: u32,
    ny: u32,
    q: u32,
    omega: f32,
};

@group(0) @binding(0) var<uniform> params: Params;
@group(0) @binding(1) var<storage, read> cIn: array<i32>;
@group(0) @binding(2) var<storage, read> weights: array<f32>;
@group(0) @binding(3) var<storage, read> fIn: array<f32>;
@group(0) @binding(4) var<storage, read_write> fOut: array<f32>;

@compute @workgroup_size(8, 8, 1)
fn main(@builtin(global_invocation_id) gid: vec3<u32>) {
    let x = gid.x;
    let y = gid.y;
    if (x >= params.nx || y >= params.ny) {
        return;
    }
    let q = params.q;
    let cellBase = (x + y * params.nx) * q;

    var rhoBar: f32 = 0.0;
    var jx: f32 = 0.0;
    var jy: f32 = 0.0;
    for (var i: u32 = 0u; i < q; i = i + 1u) {
        let fi = fIn[cellBase + i];
        rhoBar = rhoBar + fi;
        jx = jx + fi * f32(cIn[i * 2u]);
        jy = jy + fi * f32(cIn[i * 2u + 1u]);
    }
    let rho = rhoBar + 1.0;
    let ux = jx / rho;
    let uy = jy / rho;
    let uSqr = ux * ux + uy * uy;

    for (var i: u32 = 0u; i < q; i = i + 1u) {
        let cx = f32(cIn[i * 2u]);
        let cy = f32(cIn[i * 2u + 1u]);
        let cu = cx * ux + cy * uy;
        let feq = weights[i] * (rhoBar + rho * (3.0 * cu + 4.5 * cu * cu - 1.5 * uSqr));
        let relaxed = fIn[cellBase + i] * (1.0 - params.omega) + feq * params.omega;

        let nx = (i32(x) + i32(cx) + i32(params.nx)) % i32(params.nx);
        let ny = (i32(y) + i32(cy) + i32(params.ny)) % i32(params.ny);
        let destBase = (u32(nx) + u32(ny) * params.nx) * q;
        fOut[destBase + i] = relaxed;
    }
}
`

// CollideStreamBackend owns the device buffers and pipeline needed to
// run one BGK collideAndStream pass on the GPU (manager.go's
// GpuBufferManager, narrowed to the one pass this domain needs).
type CollideStreamBackend struct {
	Device *wgpu.Device

	pipeline    *wgpu.ComputePipeline
	bindGroup   *wgpu.BindGroup
	paramsBuf   *wgpu.Buffer
	neighborBuf *wgpu.Buffer
	weightBuf   *wgpu.Buffer
	popInBuf    *wgpu.Buffer
	popOutBuf   *wgpu.Buffer
	readback    *wgpu.Buffer

	nx, ny, q int
}

// NewCollideStreamBackend compiles the collide-and-stream compute
// pipeline for a lattice of the given descriptor shape. omega is not set
// here: Run takes one uniform omega per call for the whole lattice
// (spec.md §4.4.1); heterogeneous per-cell omega is not supported by
// this accelerator (spec.md §9 Non-goals: GPU execution is an
// accelerator for the common case, not a drop-in for every Dynamics).
func NewCollideStreamBackend(device *wgpu.Device, nx, ny, q int) (*CollideStreamBackend, error) {
	mod, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "collideAndStream CS",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: collideStreamShaderSource},
	})
	if err != nil {
		return nil, err
	}
	defer mod.Release()

	pipeline, err := device.CreateComputePipeline(&wgpu.ComputePipelineDescriptor{
		Label: "collideAndStream Pipeline",
		Compute: wgpu.ProgrammableStageDescriptor{
			Module:     mod,
			EntryPoint: "main",
		},
	})
	if err != nil {
		return nil, err
	}

	return &CollideStreamBackend{Device: device, pipeline: pipeline, nx: nx, ny: ny, q: q}, nil
}

// ensureBuffer is the teacher's geometric-growth reallocation idiom
// (manager.go, "ensureBuffer"): grow by 1.5x rather than to the exact
// needed size, to avoid reallocating every frame as an occupancy slowly
// creeps upward.
func ensureBuffer(device *wgpu.Device, name string, buf **wgpu.Buffer, size uint64, usage wgpu.BufferUsage) bool {
	usage = usage | wgpu.BufferUsageCopyDst | wgpu.BufferUsageCopySrc
	current := *buf
	if current != nil && current.GetSize() >= size {
		return false
	}
	newSize := size
	if current != nil {
		growth := uint64(float64(current.GetSize()) * 1.5)
		if growth > newSize {
			newSize = growth
		}
	}
	if newSize > SafeBufferSizeLimit {
		fmt.Printf("gpu: buffer %s allocation size %d exceeds safety limit %d\n", name, newSize, SafeBufferSizeLimit)
	}
	newBuf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            name,
		Size:             newSize,
		Usage:            usage,
		MappedAtCreation: false,
	})
	if err != nil {
		panic(err)
	}
	if current != nil {
		current.Release()
	}
	*buf = newBuf
	return true
}

// uploadStaticTables writes the descriptor's lattice vectors and
// weights once; they never change for the lifetime of the backend.
func (b *CollideStreamBackend) uploadStaticTables(lat *block.BlockLattice2D) {
	d := lat.Descriptor()
	neighbor := make([]byte, d.Q*2*4)
	weight := make([]byte, d.Q*4)
	for i := 0; i < d.Q; i++ {
		binary.LittleEndian.PutUint32(neighbor[i*8:], uint32(int32(d.C[i][0])))
		binary.LittleEndian.PutUint32(neighbor[i*8+4:], uint32(int32(d.C[i][1])))
		binary.LittleEndian.PutUint32(weight[i*4:], math.Float32bits(float32(d.T[i])))
	}
	ensureBuffer(b.Device, "collideStream neighbor table", &b.neighborBuf, uint64(len(neighbor)), wgpu.BufferUsageStorage)
	ensureBuffer(b.Device, "collideStream weight table", &b.weightBuf, uint64(len(weight)), wgpu.BufferUsageStorage)
	b.Device.GetQueue().WriteBuffer(b.neighborBuf, 0, neighbor)
	b.Device.GetQueue().WriteBuffer(b.weightBuf, 0, weight)
}

// uploadParams writes the uniform Params struct the shader reads
// (nx, ny, q, omega).
func (b *CollideStreamBackend) uploadParams(omega float64) {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:], uint32(b.nx))
	binary.LittleEndian.PutUint32(buf[4:], uint32(b.ny))
	binary.LittleEndian.PutUint32(buf[8:], uint32(b.q))
	binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(float32(omega)))
	ensureBuffer(b.Device, "collideStream params", &b.paramsBuf, uint64(len(buf)), wgpu.BufferUsageUniform)
	b.Device.GetQueue().WriteBuffer(b.paramsBuf, 0, buf)
}

// flatten packs every cell's F array into a single row-major float32
// buffer, cell (x, y) at offset (x + y*nx)*q so that x varies fastest,
// the layout the shader's cellBase arithmetic assumes.
func flatten(lat *block.BlockLattice2D) []byte {
	nx, ny, q := lat.NX(), lat.NY(), lat.Descriptor().Q
	out := make([]byte, nx*ny*q*4)
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			base := (x + y*nx) * q
			f := lat.Get(x, y).F
			for i := 0; i < q; i++ {
				binary.LittleEndian.PutUint32(out[(base+i)*4:], math.Float32bits(float32(f[i])))
			}
		}
	}
	return out
}

func (b *CollideStreamBackend) rebuildBindGroup() {
	entries := []wgpu.BindGroupEntry{
		{Binding: 0, Buffer: b.paramsBuf, Size: wgpu.WholeSize},
		{Binding: 1, Buffer: b.neighborBuf, Size: wgpu.WholeSize},
		{Binding: 2, Buffer: b.weightBuf, Size: wgpu.WholeSize},
		{Binding: 3, Buffer: b.popInBuf, Size: wgpu.WholeSize},
		{Binding: 4, Buffer: b.popOutBuf, Size: wgpu.WholeSize},
	}
	bg, err := b.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout:  b.pipeline.GetBindGroupLayout(0),
		Entries: entries,
	})
	if err != nil {
		panic(err)
	}
	b.bindGroup = bg
}

// Run uploads lat's populations, dispatches one collideAndStream pass at
// the given uniform omega, reads the result back, and writes it into
// lat in place (spec.md §4.4.3, "CollideAndStream performs Collide then
// Stream as a single fused pass").
func (b *CollideStreamBackend) Run(lat *block.BlockLattice2D, omega float64) error {
	b.uploadStaticTables(lat)
	b.uploadParams(omega)

	flat := flatten(lat)
	grewIn := ensureBuffer(b.Device, "collideStream pop in", &b.popInBuf, uint64(len(flat)), wgpu.BufferUsageStorage)
	grewOut := ensureBuffer(b.Device, "collideStream pop out", &b.popOutBuf, uint64(len(flat)), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	if grewIn || grewOut || b.bindGroup == nil {
		b.rebuildBindGroup()
	}
	b.Device.GetQueue().WriteBuffer(b.popInBuf, 0, flat)

	encoder, err := b.Device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	pass := encoder.BeginComputePass(nil)
	pass.SetPipeline(b.pipeline)
	pass.SetBindGroup(0, b.bindGroup, nil)
	wgX := (b.nx + 7) / 8
	wgY := (b.ny + 7) / 8
	pass.DispatchWorkgroups(uint32(wgX), uint32(wgY), 1)
	pass.End()

	readSize := uint64(len(flat))
	ensureBuffer(b.Device, "collideStream readback", &b.readback, readSize, wgpu.BufferUsageMapRead)
	encoder.CopyBufferToBuffer(b.popOutBuf, 0, b.readback, 0, readSize)

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return err
	}
	b.Device.GetQueue().Submit(cmd)

	return b.readbackInto(lat)
}

// readbackInto mirrors manager_hiz.go's ReadbackHiZ MapAsync/
// GetMappedRange/Unmap cycle: map the staging buffer, copy its bytes out
// before unmapping invalidates them, and scatter them back into lat's
// cells in the same row-major layout flatten used.
func (b *CollideStreamBackend) readbackInto(lat *block.BlockLattice2D) error {
	mapped := false
	var mapErr error
	b.readback.MapAsync(wgpu.MapModeRead, 0, b.readback.GetSize(), func(status wgpu.BufferMapAsyncStatus) {
		if status == wgpu.BufferMapAsyncStatusSuccess {
			mapped = true
		} else {
			mapErr = fmt.Errorf("gpu: readback map failed: %d", status)
		}
	})
	b.Device.Poll(true, nil)
	if mapErr != nil {
		return mapErr
	}
	if !mapped {
		return fmt.Errorf("gpu: readback never mapped")
	}

	size := b.readback.GetSize()
	data := b.readback.GetMappedRange(0, uint(size))
	out := make([]byte, len(data))
	copy(out, data)
	b.readback.Unmap()

	nx, ny, q := lat.NX(), lat.NY(), lat.Descriptor().Q
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			base := (x + y*nx) * q
			f := lat.Get(x, y).F
			for i := 0; i < q; i++ {
				f[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(out[(base+i)*4:])))
			}
		}
	}
	return nil
}

// Release frees every GPU resource this backend owns.
func (b *CollideStreamBackend) Release() {
	for _, buf := range []*wgpu.Buffer{b.paramsBuf, b.neighborBuf, b.weightBuf, b.popInBuf, b.popOutBuf, b.readback} {
		if buf != nil {
			buf.Release()
		}
	}
}
